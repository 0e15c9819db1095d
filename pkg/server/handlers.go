package server

import (
	"promptbox/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Prompt *handler.Prompt
}
