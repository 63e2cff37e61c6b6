package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"orderguard/config"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein", "welcome", "123456"}

// strengthRules is the password policy enforced before hashing.
type strengthRules struct {
	minLength        int
	maxLength        int // 0 means unbounded
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
	forbiddenWords   []string
}

func defaultStrengthRules() strengthRules {
	return strengthRules{
		minLength:        8,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
		forbiddenWords:   defaultForbiddenWords,
	}
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost  int
	rules strengthRules
}

// NewBcryptHasher returns a hasher with the default cost and strength rules.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost returns a hasher using the given bcrypt cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, rules: defaultStrengthRules()}
}

// NewConfiguredBcryptHasher builds the hasher from the auth and passwordStrength sections.
func NewConfiguredBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}
	hasher, _ := NewBcryptHasherWithCost(cost).(*bcryptHasher)

	if ps := cfg.PasswordStrength; ps != nil {
		hasher.rules = strengthRules{
			minLength:        max(ps.MinLength, 1),
			maxLength:        ps.MaxLength,
			requireUppercase: ps.RequireUppercase,
			requireLowercase: ps.RequireLowercase,
			requireNumbers:   ps.RequireNumbers,
			requireSpecial:   ps.RequireSpecial,
			forbiddenWords:   defaultForbiddenWords,
		}
	}

	return hasher
}

// Hash validates the password strength and then hashes it with bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks the password against the configured rules in a fixed order.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	rules := h.rules
	if rules.minLength == 0 {
		rules = defaultStrengthRules()
	}

	length := utf8.RuneCountInString(password)
	if length < rules.minLength {
		return weak("password must be at least " + strconv.Itoa(rules.minLength) + " characters long")
	}
	if rules.maxLength > 0 && length > rules.maxLength {
		return weak("password must be at most " + strconv.Itoa(rules.maxLength) + " characters long")
	}
	if rules.requireLowercase && !h.hasLowercase(password) {
		return weak("password must contain at least one lowercase letter")
	}
	if rules.requireUppercase && !h.hasUppercase(password) {
		return weak("password must contain at least one uppercase letter")
	}
	if rules.requireNumbers && !h.hasNumbers(password) {
		return weak("password must contain at least one number")
	}
	if rules.requireSpecial && !h.hasSpecialChars(password) {
		return weak("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, rules.forbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WithDetails("password contains forbidden words")
	}

	return nil
}

func weak(details string) error {
	return domainerrors.ErrPasswordStrength.WithDetails(details)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
