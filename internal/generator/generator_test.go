// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"strings"
	"testing"
)

func TestGenerate_OneSectionPerPage(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
	}{
		{name: "single page", pages: []string{"Home"}},
		{name: "three pages", pages: []string{"Home", "About", "Contact"}},
		{name: "cyrillic pages", pages: []string{"Главная", "О нас"}},
		{name: "page name with spaces", pages: []string{"Our Team", "Contact Us"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Generate("A test site", tt.pages)

			if got := strings.Count(site.HTML, `class="nav-link"`); got != len(tt.pages) {
				t.Errorf("nav links = %d, want %d", got, len(tt.pages))
			}
			if got := strings.Count(site.HTML, "<section id="); got != len(tt.pages) {
				t.Errorf("sections = %d, want %d", got, len(tt.pages))
			}
			// Only the first section carries the active class.
			if got := strings.Count(site.HTML, `class="page-section active"`); got != 1 {
				t.Errorf("active sections = %d, want 1", got)
			}
			// Sections appear in input order.
			last := -1
			for _, page := range tt.pages {
				idx := strings.Index(site.HTML, `<section id="`+anchor(page)+`"`)
				if idx < 0 {
					t.Fatalf("section for page %q not found", page)
				}
				if idx < last {
					t.Errorf("section for page %q out of input order", page)
				}
				last = idx
			}
		})
	}
}

func TestGenerate_DefaultPage(t *testing.T) {
	site := Generate("Описание сайта", nil)

	if len(site.Pages) != 1 || site.Pages[0].Name != DefaultPageName {
		t.Fatalf("pages = %+v, want single default page %q", site.Pages, DefaultPageName)
	}
	if !strings.Contains(site.HTML, "<title>"+DefaultPageName+"</title>") {
		t.Error("document title does not use the default page name")
	}
	if site.Metadata.PageCount != 1 {
		t.Errorf("metadata pageCount = %d, want 1", site.Metadata.PageCount)
	}
}

func TestGenerate_PageList(t *testing.T) {
	site := Generate("desc", []string{"Our Team", "Контакты"})

	want := []struct{ name, route string }{
		{"Our Team", "#our-team"},
		{"Контакты", "#контакты"},
	}
	if len(site.Pages) != len(want) {
		t.Fatalf("pages = %d, want %d", len(site.Pages), len(want))
	}
	for i, w := range want {
		p := site.Pages[i]
		if p.Name != w.name || p.Route != w.route || p.HTML != "" {
			t.Errorf("page[%d] = %+v, want {%s \"\" %s}", i, p, w.name, w.route)
		}
	}
}

func TestGenerate_DescriptionEmbedded(t *testing.T) {
	const desc = "Сайт про котиков"
	site := Generate(desc, []string{"Main"})

	if got := strings.Count(site.HTML, "<p>"+desc+"</p>"); got != 1 {
		t.Errorf("description occurrences = %d, want 1", got)
	}
}

// TestGenerate_FixedAssets verifies the stylesheet and script do not depend
// on the input.
func TestGenerate_FixedAssets(t *testing.T) {
	a := Generate("first description", []string{"One"})
	b := Generate("another description entirely", []string{"X", "Y", "Z"})

	if a.CSS != b.CSS {
		t.Error("CSS varies with input")
	}
	if a.JS != b.JS {
		t.Error("JS varies with input")
	}
	if !strings.Contains(a.CSS, "@media (max-width: 768px)") {
		t.Error("CSS missing responsive breakpoint")
	}
	if !strings.Contains(a.JS, "classList.add('active')") {
		t.Error("JS missing section switching")
	}
	if !strings.Contains(a.JS, "@keyframes fadeIn") {
		t.Error("JS missing fade-in animation")
	}
}

func TestGenerate_Metadata(t *testing.T) {
	site := Generate("описание", []string{"A", "B"})

	m := site.Metadata
	if m.Description != "описание" {
		t.Errorf("metadata description = %q", m.Description)
	}
	if m.Framework != "vanilla" || m.Status != "ready" {
		t.Errorf("metadata framework/status = %q/%q, want vanilla/ready", m.Framework, m.Status)
	}
	if m.PageCount != 2 {
		t.Errorf("metadata pageCount = %d, want 2", m.PageCount)
	}
	if m.GeneratedAt == "" {
		t.Error("metadata generatedAt is empty")
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Home", "home"},
		{"Our Team", "our-team"},
		{"Контакты", "контакты"},
		{"About  Us", "about--us"},
	}
	for _, tt := range tests {
		if got := anchor(tt.input); got != tt.want {
			t.Errorf("anchor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
