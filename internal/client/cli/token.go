package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/draftkeeper/internal/shared"
)

// getSimpleText and getToken are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getToken = GetToken

// Token prompts the user for an access token and installs it on the API
// client. Tokens are issued by the surrounding platform; the CLI does not
// run a login flow of its own.
//
// The token byte slice is securely wiped before returning. Any I/O error
// is returned unchanged.
func (a *App) Token(ctx context.Context) error {
	token, err := getToken(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(token)

	if len(token) == 0 {
		fmt.Println("Empty token, nothing changed")
		return nil
	}

	a.apiClient.SetAccessToken(string(token))
	a.hasToken = true

	fmt.Println("Token set")
	return nil
}
