package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/MustafaTekin48/marine-field-app/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for username and password and authenticates against the ERP.
// On success the session (token plus role set) is kept for the rest of the
// run and the credentials are stored for the next start. The password byte
// slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.session = session
	fmt.Println("Success!")
	return nil
}

// Logout erases the stored credentials and drops the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Logout error: %s", err.Error())
		return err
	}
	a.session = nil
	return nil
}
