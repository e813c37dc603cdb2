package web

import (
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/signing"
)

type Repos struct {
	Users domain.UsersRepo
	Keys  domain.KeysRepo
	Docs  domain.DocumentsRepo
}

type AuthDeps struct {
	Hasher     domain.PasswordHasher
	Tokens     domain.TokenManager
	Blacklist  domain.TokenBlacklist
	AdminToken string
}

type Services struct {
	Custody  *signing.Custody
	Signer   *signing.Signer
	Verifier *signing.Verifier
}
