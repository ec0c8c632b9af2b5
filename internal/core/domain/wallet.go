package domain

import "time"

// Wallet is an identity record holding a derived address and key material.
// The private key is stored and returned in plaintext: this is a demo
// application and the client displays it to the user on creation.
type Wallet struct {
	ID         int       `json:"id"`
	Address    string    `json:"address"`
	PublicKey  string    `json:"publicKey"`
	PrivateKey string    `json:"privateKey"`
	IsDemo     bool      `json:"isDemo"`
	CreatedAt  time.Time `json:"createdAt"`
}
