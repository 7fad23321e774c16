package label

// Footer is the company block printed in every cell's footer. It is usually
// the same for every label a site prints, so it can be configured once.
type Footer struct {
	CompanyName  string `json:"company_name" toml:"company_name" yaml:"company_name"`
	AddressLine1 string `json:"address_line1" toml:"address_line1" yaml:"address_line1"`
	AddressLine2 string `json:"address_line2" toml:"address_line2" yaml:"address_line2"`
	Email        string `json:"email" toml:"email" yaml:"email"`
}

// DefaultFooter returns the manufacturer's own company block.
func DefaultFooter() Footer {
	return Footer{
		CompanyName:  "M/S. NOVA ENTERPRISES",
		AddressLine1: "Plot no. F-39, MIDC Shiroli, Kolhapur-416 122",
		AddressLine2: "Ph.: +91-9922996051",
		Email:        "e-mail: sales@novaent.in",
	}
}

// IsZero reports whether every footer field is empty.
func (f Footer) IsZero() bool { return f == Footer{} }

// Merge returns f with empty fields taken from fallback.
func (f Footer) Merge(fallback Footer) Footer {
	if f.CompanyName == "" {
		f.CompanyName = fallback.CompanyName
	}
	if f.AddressLine1 == "" {
		f.AddressLine1 = fallback.AddressLine1
	}
	if f.AddressLine2 == "" {
		f.AddressLine2 = fallback.AddressLine2
	}
	if f.Email == "" {
		f.Email = fallback.Email
	}
	return f
}

// Footer extracts the company block from r.
func (r Record) Footer() Footer {
	return Footer{
		CompanyName:  r.CompanyName,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Email:        r.Email,
	}
}

// WithFooter returns r with its company block replaced by f.
func WithFooter(r Record, f Footer) Record {
	r.CompanyName = f.CompanyName
	r.AddressLine1 = f.AddressLine1
	r.AddressLine2 = f.AddressLine2
	r.Email = f.Email
	return r
}

// Fill adds f's values to values for company-block keys that are absent.
// Keys already present, even with empty values, are left alone.
func (f Footer) Fill(values map[string]string) {
	for name, v := range map[string]string{
		FieldCompanyName:  f.CompanyName,
		FieldAddressLine1: f.AddressLine1,
		FieldAddressLine2: f.AddressLine2,
		FieldEmail:        f.Email,
	} {
		if _, ok := values[name]; !ok {
			values[name] = v
		}
	}
}
