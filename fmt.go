package tempus

/*
fmt.go implements the format specifier grammar check shared by the
runtime surface and the tempusgen literal generator: both reject
exactly the same inputs, in a single left-to-right scan.
*/

/*
formatDirectives is the closed set of single-character directive codes
a '%' may introduce, alongside the '%%' escape.
*/
const formatDirectives = `aAbBcCdDeFgGHIjmMnNpPrRSTuUVwWyYz`

/*
ValidateFormatString returns an error following a single left-to-right
scan of the specifier string s. A [formatErr] describes the first
unrecognized directive, or a '%' left incomplete at the end of input.
Literal characters outside a specifier always pass.
*/
func ValidateFormatString(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 >= len(s) {
			return errorTrailingSpecifier
		}

		c := s[i+1]
		if c != '%' && !directiveKnown(c) {
			return errorInvalidDirective(c, i)
		}
		i++
	}

	return nil
}

func directiveKnown(c byte) bool {
	if !isAlpha(c) {
		return false
	}
	for i := 0; i < len(formatDirectives); i++ {
		if formatDirectives[i] == c {
			return true
		}
	}
	return false
}
