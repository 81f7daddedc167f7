// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the account does not exist so that a login
// for an unknown email costs the same as one with a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("herstyle-timing-equalizer"), bcrypt.DefaultCost)
	if err != nil {
		panic("sec: failed to prepare dummy hash: " + err.Error())
	}
	return hash
})

// HashPassword hashes a plain-text password using the bcrypt algorithm.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// BurnPasswordCheck performs a comparison that always fails.
func BurnPasswordCheck(plainTextPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plainTextPassword))
}
