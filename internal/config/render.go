package config

import (
	"fmt"
	"sort"
	"strings"
)

// splitOptions groups options by their TOML table, preserving declaration order.
func splitOptions(opts []ConfigOption) (topLevel []ConfigOption, sections map[string][]ConfigOption, order []string) {
	sections = make(map[string][]ConfigOption)
	for _, o := range opts {
		if !strings.Contains(o.Key, ".") {
			topLevel = append(topLevel, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		section := parts[0]
		if _, ok := sections[section]; !ok {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{
			Key:     parts[1],
			Default: o.Default,
			Comment: o.Comment,
		})
	}
	return topLevel, sections, order
}

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var lines []string
	lines = append(lines, "# blockfmt configuration (TOML)")

	topLevel, sections, order := splitOptions(GetConfigOptions())
	for _, o := range topLevel {
		lines = append(lines, optionLines(o)...)
	}
	for _, section := range order {
		lines = append(lines, "["+section+"]")
		for _, o := range sections[section] {
			lines = append(lines, optionLines(o)...)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// UpdateTOML merges defaults into an existing TOML string and comments out
// unknown keys. Missing keys of a table that already exists are inserted at
// the end of that table so no table is declared twice.
func UpdateTOML(existing string) (string, bool) {
	lines := strings.Split(existing, "\n")
	opts := GetConfigOptions()

	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	existingKeys := make(map[string]bool)
	sectionEnd := make(map[string]int)
	currentSection := ""
	sectionEnd[""] = 0
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			sectionEnd[currentSection] = len(out)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok || trim == "" || strings.HasPrefix(trim, "#") {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		existingKeys[fullKey] = true
		if !known[fullKey] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
		} else {
			out = append(out, line)
		}
		sectionEnd[currentSection] = len(out)
	}

	topLevel, sections, order := splitOptions(opts)

	// insertions maps an index in out to the lines inserted before it.
	insertions := make(map[int][]string)
	var appended []string

	var missingTop []string
	for _, o := range topLevel {
		if !existingKeys[o.Key] {
			missingTop = append(missingTop, optionLines(o)...)
		}
	}
	if len(missingTop) > 0 {
		insertions[sectionEnd[""]] = append(insertions[sectionEnd[""]], missingTop...)
	}

	for _, section := range order {
		var missing []string
		for _, o := range sections[section] {
			if !existingKeys[section+"."+o.Key] {
				missing = append(missing, optionLines(o)...)
			}
		}
		if len(missing) == 0 {
			continue
		}
		if end, ok := sectionEnd[section]; ok && section != "" {
			insertions[end] = append(insertions[end], missing...)
			continue
		}
		appended = append(appended, "["+section+"]")
		appended = append(appended, missing...)
	}

	if len(insertions) == 0 && len(appended) == 0 {
		return strings.Join(out, "\n"), changed
	}

	points := make([]int, 0, len(insertions))
	for idx := range insertions {
		points = append(points, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(points)))
	for _, idx := range points {
		block := append([]string{"# Added by config update"}, insertions[idx]...)
		out = append(out[:idx], append(block, out[idx:]...)...)
	}
	if len(appended) > 0 {
		out = append(out, "", "# Added by config update")
		out = append(out, appended...)
	}
	return strings.Join(out, "\n"), true
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

// optionLines renders one option as a comment line, an assignment and a blank separator.
func optionLines(o ConfigOption) []string {
	var lines []string
	if o.Comment != "" {
		lines = append(lines, "# "+o.Comment)
	}
	return append(lines, o.Key+" = "+tomlValue(o.Default), "")
}

func tomlValue(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s = %q", k, fmt.Sprint(v[k]))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
}
