// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator produces draft site assets (HTML, CSS, JS) from a text
// description and a list of page names. It is pure: no I/O, no randomness,
// identical inputs give identical output. The stylesheet and behavior script
// are fixed and do not depend on the input.
package generator

import (
	"fmt"
	"strings"

	"siteforge/internal/models"
)

// DefaultPageName is substituted when the caller supplies no pages.
const DefaultPageName = "Главная"

// Metadata describes a generation result.
type Metadata struct {
	GeneratedAt string `json:"generatedAt"`
	Description string `json:"description"`
	Framework   string `json:"framework"`
	Status      string `json:"status"`
	PageCount   int    `json:"pageCount"`
}

// Site is the full set of generated draft assets.
type Site struct {
	HTML     string        `json:"html"`
	CSS      string        `json:"css"`
	JS       string        `json:"js"`
	Pages    []models.Page `json:"pages"`
	Metadata Metadata      `json:"metadata"`
}

// Generate builds a multi-page site draft: a navigation bar with one link
// per page, one content section per page (only the first visible), and the
// fixed stylesheet and section-switching script.
func Generate(description string, pages []string) Site {
	if len(pages) == 0 {
		pages = []string{DefaultPageName}
	}

	var nav strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&nav, `<a href="#%s" class="nav-link">%s</a>`, anchor(page), page)
	}

	var sections strings.Builder
	for i, page := range pages {
		active := ""
		if i == 0 {
			active = "active"
		}
		fmt.Fprintf(&sections, sectionTemplate, anchor(page), active, page, page, description)
	}

	html := fmt.Sprintf(documentTemplate, pages[0], nav.String(), sections.String())

	pageList := make([]models.Page, len(pages))
	for i, page := range pages {
		pageList[i] = models.Page{Name: page, HTML: "", Route: "#" + anchor(page)}
	}

	return Site{
		HTML:  html,
		CSS:   siteCSS,
		JS:    siteJS,
		Pages: pageList,
		Metadata: Metadata{
			GeneratedAt: "now",
			Description: description,
			Framework:   "vanilla",
			Status:      "ready",
			PageCount:   len(pages),
		},
	}
}

// anchor derives the navigation anchor for a page name: lowercase with
// spaces replaced by hyphens. No further normalization — non-ASCII letters
// pass through unchanged.
func anchor(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

const documentTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body>
    <nav class="navbar">
        <div class="nav-container">
            <div class="logo">AI Site</div>
            <div class="nav-menu">
                %s
            </div>
        </div>
    </nav>
    %s
    <footer>
        <p>© 2024 AI Builder</p>
    </footer>
</body>
</html>`

const sectionTemplate = `
    <section id="%s" class="page-section %s">
        <div class="content">
            <h1>%s</h1>
            <p>Раздел: %s</p>
            <p>%s</p>
            <div class="feature-grid">
                <div class="feature-card">
                    <span class="icon">⚡</span>
                    <h3>Быстро</h3>
                    <p>Мгновенная загрузка</p>
                </div>
                <div class="feature-card">
                    <span class="icon">🎨</span>
                    <h3>Красиво</h3>
                    <p>Современный дизайн</p>
                </div>
                <div class="feature-card">
                    <span class="icon">📱</span>
                    <h3>Адаптивно</h3>
                    <p>Для всех устройств</p>
                </div>
            </div>
        </div>
    </section>`

// siteCSS is the fixed stylesheet shipped with every generated site.
const siteCSS = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
    background: linear-gradient(135deg, #1a1f2c 0%, #2d1f3d 100%);
    color: #fff;
    min-height: 100vh;
}

.navbar {
    position: fixed;
    top: 0;
    width: 100%;
    background: rgba(26, 31, 44, 0.95);
    backdrop-filter: blur(10px);
    border-bottom: 1px solid rgba(255, 255, 255, 0.1);
    z-index: 1000;
}

.nav-container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 1rem 2rem;
    display: flex;
    justify-content: space-between;
    align-items: center;
}

.logo {
    font-size: 1.5rem;
    font-weight: bold;
    background: linear-gradient(135deg, #8b5cf6 0%, #d946ef 100%);
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
}

.nav-menu {
    display: flex;
    gap: 2rem;
}

.nav-link {
    color: #fff;
    text-decoration: none;
    transition: color 0.3s;
    opacity: 0.8;
}

.nav-link:hover {
    opacity: 1;
    color: #8b5cf6;
}

.page-section {
    display: none;
    min-height: 100vh;
    padding: 120px 20px 80px;
}

.page-section.active {
    display: block;
}

.content {
    max-width: 1200px;
    margin: 0 auto;
}

.content h1 {
    font-size: 3rem;
    margin-bottom: 1rem;
    background: linear-gradient(135deg, #8b5cf6 0%, #d946ef 100%);
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
}

.content > p {
    font-size: 1.2rem;
    opacity: 0.9;
    margin-bottom: 3rem;
}

.feature-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
    gap: 2rem;
    margin-top: 3rem;
}

.feature-card {
    background: rgba(255, 255, 255, 0.05);
    backdrop-filter: blur(10px);
    border: 1px solid rgba(255, 255, 255, 0.1);
    padding: 2rem;
    border-radius: 12px;
    text-align: center;
    transition: transform 0.3s, box-shadow 0.3s;
}

.feature-card:hover {
    transform: translateY(-5px);
    box-shadow: 0 10px 30px rgba(139, 92, 246, 0.3);
}

.icon {
    font-size: 3rem;
    display: block;
    margin-bottom: 1rem;
}

.feature-card h3 {
    font-size: 1.5rem;
    margin-bottom: 0.5rem;
}

.feature-card p {
    opacity: 0.8;
}

footer {
    text-align: center;
    padding: 40px 20px;
    opacity: 0.7;
    border-top: 1px solid rgba(255, 255, 255, 0.1);
}

@media (max-width: 768px) {
    .nav-menu {
        gap: 1rem;
    }

    .content h1 {
        font-size: 2rem;
    }

    .feature-grid {
        grid-template-columns: 1fr;
    }
}`

// siteJS is the fixed behavior script: click-based section switching plus a
// staggered fade-in for feature cards. Template-literal backticks are
// spliced in because Go raw strings cannot contain them.
const siteJS = `document.addEventListener('DOMContentLoaded', () => {
    const navLinks = document.querySelectorAll('.nav-link');
    const sections = document.querySelectorAll('.page-section');

    navLinks.forEach(link => {
        link.addEventListener('click', (e) => {
            e.preventDefault();
            const targetId = link.getAttribute('href').substring(1);

            sections.forEach(section => {
                section.classList.remove('active');
            });

            const targetSection = document.getElementById(targetId);
            if (targetSection) {
                targetSection.classList.add('active');
                window.scrollTo({ top: 0, behavior: 'smooth' });
            }
        });
    });

    const cards = document.querySelectorAll('.feature-card');
    cards.forEach((card, index) => {
        card.style.animationDelay = ` + "`${index * 0.1}s`" + `;
        card.style.animation = 'fadeIn 0.5s ease-out forwards';
    });
});

const style = document.createElement('style');
style.textContent = ` + "`" + `
    @keyframes fadeIn {
        from {
            opacity: 0;
            transform: translateY(20px);
        }
        to {
            opacity: 1;
            transform: translateY(0);
        }
    }
` + "`" + `;
document.head.appendChild(style);`
