package services

import (
	"net/url"
	"strings"
)

// NormalizeImageURL разрешает возможно относительный адрес картинки
// относительно канонического url статьи. Любой некорректный вход даёт nil:
// битая картинка не должна ронять инжест всей статьи.
func NormalizeImageURL(candidate, baseURL string) *string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	resolved, err := base.Parse(candidate)
	if err != nil {
		return nil
	}
	// относительная строка без базовой схемы/хоста наружу не уходит
	if !resolved.IsAbs() || resolved.Host == "" {
		return nil
	}

	s := resolved.String()
	return &s
}
