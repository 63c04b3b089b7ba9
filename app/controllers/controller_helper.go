package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(FROM_PROTECTED); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}

// ExtractUsername gets the username from Locals (set by middleware)
func ExtractUsername(c *fiber.Ctx) string {
	if userNameValue := c.Locals(USER_NAME); userNameValue != nil {
		if userName, ok := userNameValue.(string); ok {
			return userName
		}
	}

	return ""
}

// GetClientIP determines the actual client IP address considering proxies.
// Returns both IPv4 and IPv6 addresses if available.
func GetClientIP(c *fiber.Ctx) (string, string) {
	ipv4 := ""
	ipv6 := ""

	// Proxy headers first: Cloudflare, then the standard forwarded chain
	candidates := []string{c.Get("CF-Connecting-IP")}
	for _, ip := range strings.Split(c.Get("X-Forwarded-For"), ",") {
		candidates = append(candidates, strings.TrimSpace(ip))
	}
	candidates = append(candidates, c.Get("X-Real-IP"))

	for _, ip := range candidates {
		if ip == "" {
			continue
		}
		if strings.Contains(ip, ":") {
			if ipv6 == "" {
				ipv6 = ip
			}
		} else if ipv4 == "" {
			ipv4 = ip
		}
	}

	if ipv4 != "" || ipv6 != "" {
		return ipv4, ipv6
	}

	// Fall back to the connection address
	ipAddr := c.IP()
	if strings.Contains(ipAddr, ":") {
		// Unwrap IPv4-mapped-IPv6 addresses (::ffff:192.168.1.1)
		if strings.HasPrefix(ipAddr, "::ffff:") && strings.Contains(ipAddr, ".") {
			ipv4 = strings.TrimPrefix(ipAddr, "::ffff:")
		} else {
			ipv6 = ipAddr
		}
	} else {
		ipv4 = ipAddr
	}

	return ipv4, ipv6
}
