package probe

// Credential is the API key. Its contents are never inspected beyond
// presence and length.
type Credential string

// LoadCredential reads the variable `name` through `lookup`. An unset variable
// yields an empty credential rather than an error.
func LoadCredential(name string, lookup func(string) string) Credential {
	return Credential(lookup(name))
}

func (c Credential) Present() bool {
	return c != ""
}

func (c Credential) Len() int {
	return len(c)
}
