package temporal

// AliasResolver maps raw author emails to the identity they are grouped under
type AliasResolver struct {
	aliases map[string]string
}

// NewAliasResolver copies the alias table so later changes to the caller's
// map do not leak into a running analysis
func NewAliasResolver(aliases map[string]string) AliasResolver {
	table := make(map[string]string, len(aliases))
	for email, canonical := range aliases {
		table[email] = canonical
	}
	return AliasResolver{aliases: table}
}

// Resolve returns the canonical email for a raw author email
func (r AliasResolver) Resolve(email string) string {
	if email == "" {
		return UnknownEmail
	}
	if canonical, ok := r.aliases[email]; ok {
		return canonical
	}
	return email
}
