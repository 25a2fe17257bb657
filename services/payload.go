package services

// ProposalService is one line item of an assembled proposal. Price carries the
// catalog base price; DiscountedPrice the effective (possibly overridden)
// price, nil when the source payload predates pricing.
type ProposalService struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	Service         string   `json:"service"`
	ScopeOfWork     string   `json:"scopeOfWork,omitempty"`
	BillingCycle    string   `json:"billingCycle"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
}

// EffectiveFee is the price a document should charge for this line.
func (p ProposalService) EffectiveFee() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// ClientInfo is the free-form client block of a proposal. No field is
// validated here; exports that address the client by name check Name
// themselves.
type ClientInfo struct {
	Name               string `json:"name,omitempty"`
	Representative     string `json:"clientRepresentative,omitempty"`
	RepresentativePost string `json:"clientRepresentativePost,omitempty"`
	ContactNo          string `json:"contactNo,omitempty"`
	Email              string `json:"email,omitempty"`
	Address            string `json:"address,omitempty"`
	GSTIN              string `json:"gstin,omitempty"`
	PAN                string `json:"pan,omitempty"`
	EntityType         string `json:"entityType,omitempty"`
	ReferenceNumber    string `json:"referenceNumber,omitempty"`
}

// ProposalMeta is the proposal-level metadata block, passed through verbatim
// into documents.
type ProposalMeta struct {
	PreparedFor string `json:"preparedFor,omitempty"`
	PreparedBy  string `json:"preparedBy,omitempty"`
	Date        string `json:"date,omitempty"`
	Message     string `json:"message,omitempty"`
	Terms       string `json:"terms,omitempty"`
}

// ProposalPayload is the normalizer's input: client details, metadata and the
// selected services.
type ProposalPayload struct {
	Client   ClientInfo        `json:"client"`
	Proposal ProposalMeta      `json:"proposal"`
	Services []ProposalService `json:"services"`
}

// ProposalSummary is the aggregate block the normalizer adds.
type ProposalSummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ProposalResponse is the normalized proposal: the payload echoed back plus
// the computed summary.
type ProposalResponse struct {
	ProposalPayload
	Summary ProposalSummary `json:"summary"`
}

// BuildPayload assembles a proposal from the catalog, the current selection
// and the client form. It reads everything it needs immediately; the returned
// value is a snapshot that later selection changes cannot touch. Line items
// follow catalog order. An empty selection yields an empty (non-nil) services
// slice.
func BuildPayload(c *Catalog, s *Selection, client ClientInfo, meta ProposalMeta) ProposalPayload {
	lines := make([]ProposalService, 0, s.Count())
	for _, item := range c.Items() {
		if !s.IsSelected(item.ID) {
			continue
		}
		effective := s.EffectivePrice(c, item.ID)
		lines = append(lines, ProposalService{
			ID:              item.ID,
			Category:        item.Category,
			Service:         item.Service,
			ScopeOfWork:     item.ScopeOfWork,
			BillingCycle:    item.BillingCycle,
			Price:           item.Price,
			DiscountedPrice: &effective,
		})
	}
	if meta.PreparedFor == "" {
		meta.PreparedFor = preparedForDefault(client)
	}
	return ProposalPayload{Client: client, Proposal: meta, Services: lines}
}

func preparedForDefault(client ClientInfo) string {
	if client.Name != "" {
		return client.Name
	}
	return "Client"
}
