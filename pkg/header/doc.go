// Package header provides the shared resource header embedded in
// serialized cookierc outputs (lint results, diff results).
package header
