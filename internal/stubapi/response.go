package stubapi

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error codes used in {"error": {"code", "message"}} bodies.
const (
	codeValidation      = "VALIDATION_ERROR"
	codeBadRequest      = "BAD_REQUEST"
	codeNotFound        = "NOT_FOUND"
	codeDuplicate       = "DUPLICATE"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeUnauthorised    = "UNAUTHORISED"
	codeTokenExpired    = "TOKEN_EXPIRED"
	codeTokenRevoked    = "TOKEN_REVOKED"
	codeInvalidToken    = "INVALID_TOKEN"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// pageParams reads ?page and ?page_size. Missing or unparseable values fall
// back to the defaults; page_size is capped at max.
func pageParams(c *gin.Context, def, max int) (page, size int) {
	page = atoiOr(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	size = atoiOr(c.Query("page_size"), def)
	if size < 1 {
		size = def
	}
	if size > max {
		size = max
	}
	return page, size
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// respondPage writes one page of items in the listing envelope.
func respondPage[T any](c *gin.Context, items []T, page, size int) {
	total := len(items)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	c.JSON(200, gin.H{
		"items":       pageItems,
		"page":        page,
		"page_size":   size,
		"total_items": total,
		"total_pages": (total + size - 1) / size,
	})
}

func filterSorted[T any](in []T, keep func(T) bool, less func(a, b T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func matchesFold(filter, value string) bool {
	return filter == "" || strings.EqualFold(filter, value)
}

func containsFold(filter, value string) bool {
	return filter == "" || strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
