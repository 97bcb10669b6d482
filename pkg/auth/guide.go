package auth

import (
	"fmt"
	"io"
	"strings"
)

// WriteTokenGuide explains how to obtain an application bearer token
func WriteTokenGuide(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, "OBTAINING A TWITTER API BEARER TOKEN")
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "twitterosint calls the v1.1 REST API with an app-only bearer token.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  1. Sign in at https://developer.twitter.com and open the developer portal")
	fmt.Fprintln(w, "  2. Create a project and an app (or select an existing app)")
	fmt.Fprintln(w, "  3. Under \"Keys and tokens\", generate the Bearer Token")
	fmt.Fprintln(w, "  4. Paste it at the prompt below; it is kept in the system keychain,")
	fmt.Fprintln(w, "     or in an encrypted file when no keychain is available")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "The token can also be supplied through %s or --bearer-token.\n", TokenEnvVar)
	fmt.Fprintln(w, strings.Repeat("=", 72))
}
