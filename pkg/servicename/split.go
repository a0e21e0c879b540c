package servicename

const (
	// Separator delimits the components of a name.
	Separator = '/'
	// SchemeSeparator delimits the scheme from the scheme path in component 0.
	SchemeSeparator = ':'
)

// split breaks raw on Separator. Once any parenthesis has been seen the
// counter stays non-zero and no later Separator splits.
func split(raw string) []string {
	var (
		elements []string
		start    int
		count    int
	)
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case Separator:
			if count == 0 {
				elements = append(elements, raw[start:i])
				start = i + 1
			}
		case '(', ')':
			count++
		}
	}
	return append(elements, raw[start:])
}
