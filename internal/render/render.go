// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render assembles the final self-contained HTML document for a
// published site from its stored content bodies.
package render

import (
	"fmt"
	"strings"

	"siteforge/internal/store"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Published Site</title>
    <style>%s</style>
</head>
<body>
    %s
    <script>%s</script>
</body>
</html>`

// NotFoundPage is the document served for unknown slugs.
const NotFoundPage = `<!DOCTYPE html>
<html>
<head><title>404</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 100px;">
    <h1>404 - Сайт не найден</h1>
    <p>Проверьте правильность ссылки</p>
</body>
</html>`

// Document builds the deliverable page: stored CSS inline in a style block,
// stored JS inline in a script block, and the stored markup as the body.
// Content that does not look like markup (no leading tag) is wrapped in a
// container element.
func Document(a *store.SiteAssets) []byte {
	body := a.HTMLContent
	if !strings.HasPrefix(strings.TrimSpace(body), "<") {
		body = fmt.Sprintf("<div>%s</div>", body)
	}
	return []byte(fmt.Sprintf(documentTemplate, a.CSSContent, body, a.JSContent))
}
