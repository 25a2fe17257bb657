package services

// Normalize computes the summary block for a proposal payload and echoes the
// payload back. Pure; storage and transport live with the callers. A nil
// services slice normalizes to an empty one so the response always carries
// "services": [].
func Normalize(p ProposalPayload) ProposalResponse {
	if p.Services == nil {
		p.Services = []ProposalService{}
	}
	if p.Proposal.PreparedFor == "" {
		p.Proposal.PreparedFor = preparedForDefault(p.Client)
	}

	var total float64
	for _, svc := range p.Services {
		total += svc.EffectiveFee()
	}

	return ProposalResponse{
		ProposalPayload: p,
		Summary: ProposalSummary{
			Total: total,
			Count: len(p.Services),
		},
	}
}
