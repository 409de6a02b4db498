package common

import (
	"crypto/rand"
	"os"
	"testing"
)

func IsTestEnv() bool {
	return testing.Testing()
}
func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range len(items) {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := range len(items) {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

const registrationCodeLength = 6
const registrationCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateRegistrationCode returns the short code an elder shares with
// caregivers, 6 uppercase base-36 characters. Uniqueness is not enforced;
// the keyspace is large enough that collisions are negligible in practice.
func GenerateRegistrationCode() string {
	buf := make([]byte, registrationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i := range buf {
		buf[i] = registrationCodeAlphabet[int(buf[i])%len(registrationCodeAlphabet)]
	}
	return string(buf)
}
