// internal/app/system/limits/limits.go
package limits

// Request body size limits for form submissions. These keep oversized
// requests from exhausting memory during ParseForm.
const (
	// MaxLoginFormSize caps the sign-in form body.
	MaxLoginFormSize = 16 << 10 // 16 KB

	// MaxAccountFormSize caps profile and password forms. The bio field
	// dominates, and it is far smaller than this.
	MaxAccountFormSize = 256 << 10 // 256 KB
)
