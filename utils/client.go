// ════════════════════════════════════════════════════════════
// Path: utils/client.go
// Describe the client behind a request
// ════════════════════════════════════════════════════════════

package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientInfo is what the storefront logs about a shopper's client.
type ClientInfo struct {
	IP         string
	UserAgent  string
	DeviceType string
	Browser    string
	OS         string
}

// DescribeClient reads the client IP and parses the User-Agent header
func DescribeClient(c *gin.Context) ClientInfo {
	ua := c.GetHeader("User-Agent")
	return ClientInfo{
		IP:         GetClientIP(c),
		UserAgent:  ua,
		DeviceType: ParseDeviceType(ua),
		Browser:    ParseBrowser(ua),
		OS:         ParseOS(ua),
	}
}

// ParseDeviceType determines if the request is from mobile, tablet, or desktop
func ParseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone") {
		return "mobile"
	}
	return "desktop"
}

// ParseBrowser extracts browser name from user agent
func ParseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

// ParseOS extracts operating system from user agent
func ParseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)

	// mobile platforms first: their UAs also mention "linux" / "mac os"
	switch {
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" && net.ParseIP(xri) != nil {
		return xri
	}

	return c.ClientIP()
}
