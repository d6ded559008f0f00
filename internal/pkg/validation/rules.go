package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern matches a conventional mailbox address
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// MobilePattern matches a 10-digit mobile number
	MobilePattern = `^\d{10}$`

	// AadharPattern matches a 12-digit Aadhar number
	AadharPattern = `^\d{12}$`

	// PincodePattern matches a 6-digit postal code
	PincodePattern = `^\d{6}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email   *regexp.Regexp
	Mobile  *regexp.Regexp
	Aadhar  *regexp.Regexp
	Pincode *regexp.Regexp
}{
	Email:   regexp.MustCompile(EmailPattern),
	Mobile:  regexp.MustCompile(MobilePattern),
	Aadhar:  regexp.MustCompile(AadharPattern),
	Pincode: regexp.MustCompile(PincodePattern),
}
