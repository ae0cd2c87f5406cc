package mail

import (
	"errors"
	"net/smtp"
)

// loginAuth implements the SMTP LOGIN mechanism which some providers
// (e.g. Outlook) require instead of PLAIN.
type loginAuth struct {
	username string
	password string
}

func newLoginAuth(username, password string) smtp.Auth {
	return &loginAuth{username, password}
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	return "LOGIN", []byte{}, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		switch string(fromServer) {
		case "Username:":
			return []byte(a.username), nil
		case "Password:":
			return []byte(a.password), nil
		default:
			return nil, errors.New("unknown SMTP LOGIN prompt")
		}
	}

	return nil, nil
}
