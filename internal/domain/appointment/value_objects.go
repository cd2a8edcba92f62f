package appointment

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidCustomerName  = errors.New("customer name is required and must be at most 200 characters")
	ErrInvalidCustomerEmail = errors.New("invalid customer email format")
	ErrInvalidCustomerPhone = errors.New("customer phone must be at most 32 characters")
	ErrCustomerNotesTooLong = errors.New("customer notes must be at most 1000 characters")
	ErrInvalidToken         = errors.New("invalid booking token")
)

const (
	MaxCustomerNameLength  = 200
	MaxCustomerPhoneLength = 32
	MaxCustomerNotesLength = 1000

	tokenBytes = 32
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Customer struct {
	name  string
	email string
	phone string
	notes string
}

func NewCustomer(name, email, phone, notes string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return Customer{}, ErrInvalidCustomerName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidCustomerEmail
	}
	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) > MaxCustomerPhoneLength {
		return Customer{}, ErrInvalidCustomerPhone
	}
	if utf8.RuneCountInString(notes) > MaxCustomerNotesLength {
		return Customer{}, ErrCustomerNotesTooLong
	}
	return Customer{name: name, email: email, phone: phone, notes: notes}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Notes() string { return c.notes }

// Token is the customer-facing credential for lookup and cancellation.
type Token struct {
	value string
}

func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil || len(raw) != tokenBytes {
		return Token{}, ErrInvalidToken
	}
	return Token{value: s}, nil
}

func (t Token) String() string {
	return t.value
}

func (t Token) IsZero() bool {
	return t.value == ""
}

type TokenGenerator interface {
	Generate() (Token, error)
}

type RandomTokenGenerator struct{}

func NewRandomTokenGenerator() TokenGenerator {
	return RandomTokenGenerator{}
}

func (RandomTokenGenerator) Generate() (Token, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return Token{}, err
	}
	return Token{value: base64.RawURLEncoding.EncodeToString(buf)}, nil
}

// ReconstructCustomer rebuilds a customer from storage without re-validating it.
func ReconstructCustomer(name, email, phone, notes string) Customer {
	return Customer{name: name, email: email, phone: phone, notes: notes}
}

func ReconstructToken(s string) Token {
	return Token{value: s}
}
