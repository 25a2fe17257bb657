package services

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0"},
		{"small integer", 5, "₹5"},
		{"with paise", 42.50, "₹42.50"},
		{"hundreds", 999.99, "₹999.99"},
		{"thousands", 1234.56, "₹1,234.56"},
		{"ten thousands", 12345, "₹12,345"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"ten lakhs", 1234567.89, "₹12,34,567.89"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"whole rupees drop paise", 2500, "₹2,500"},
		{"exact lakh boundary", 100000, "₹1,00,000"},
		{"negative", -250000.50, "-₹2,50,000.50"},
		{"negative whole", -100, "-₹100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.input); got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"42", "42"},
		{"999", "999"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"12345678", "1,23,45,678"},
	}

	for _, tt := range tests {
		if got := groupIndian(tt.input); got != tt.expect {
			t.Errorf("groupIndian(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
