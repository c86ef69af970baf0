// codes.go — numeric flub codes and the success sentinel.
//
// Conventions (documented, not enforced here):
//   - Codes are plain unsigned integers chosen by the caller.
//   - 0 is reserved for "no failure". Compact builds rely on it: a compact
//     Ref with code 0 is indistinguishable from success.
//   - Higher layers may give codes meaning; the core attaches none.
package flub

import "strconv"

// Code is the machine-readable failure code carried by every flub.
type Code uint64

// CodeOK is the success sentinel. Never throw with it.
const CodeOK Code = 0

// IsOK reports whether c is the success sentinel.
func (c Code) IsOK() bool { return c == CodeOK }

// String returns the decimal form of the code.
func (c Code) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Hex returns the code as a 0x-prefixed lowercase hex string.
func (c Code) Hex() string {
	return "0x" + strconv.FormatUint(uint64(c), 16)
}
