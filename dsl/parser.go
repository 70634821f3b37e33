package dsl

import (
	"regexp"
	"strings"
)

// legacyPrefix marks the old compact dialect: type:user-email:s/password:s
const legacyPrefix = "type:"

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// Parse tokenizes one DSL line into a Model. The dialect is dispatched
// structurally: inputs starting with "type:" take the legacy path,
// everything else the modern space-delimited path. All malformed input
// is reported as a *Error; valid input never depends on any state
// outside the arguments.
func Parse(raw string, cfg Config) (*Model, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, NewError("empty DSL input").
			WithHint(`describe a type like "User email:s name:s"`)
	}

	if strings.HasPrefix(trimmed, legacyPrefix) {
		return parseLegacy(trimmed, cfg)
	}
	return parseModern(trimmed, cfg)
}

// parseLegacy handles the type:<name>-<prop>:<type>/<prop>:<type> dialect.
// The first "-" separates the name from the chunk list and "/" separates
// chunks. A body whose only "-" was consumed by the name split has no
// chunk list left, so single-segment bodies are a hard error rather than
// guessing where the name ends.
func parseLegacy(trimmed string, cfg Config) (*Model, error) {
	body := strings.TrimPrefix(trimmed, legacyPrefix)

	if !strings.Contains(body, "-") {
		return nil, NewError("legacy DSL is missing the '-' between the type name and its properties").
			WithToken(body).
			WithHint("write type:<name>-<prop>:<type>/<prop>:<type>")
	}

	segments := strings.Split(body, "/")
	if len(segments) < 2 {
		return nil, NewError("legacy DSL has no properties").
			WithToken(body).
			WithHint("separate properties with '/': type:user-email:s/password:s")
	}

	rawName, firstChunk, found := strings.Cut(segments[0], "-")
	if !found {
		return nil, NewError("legacy DSL is missing the '-' between the type name and its properties").
			WithToken(segments[0]).
			WithHint("write type:<name>-<prop>:<type>/<prop>:<type>")
	}
	if strings.TrimSpace(rawName) == "" {
		return nil, NewError("legacy DSL is missing a type name").
			WithHint("name the type right after the prefix: type:user-...")
	}

	chunks := append([]string{firstChunk}, segments[1:]...)

	model := &Model{TypeName: SanitizeTypeName(rawName)}
	for i, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		segs := splitNonEmpty(chunk, ":")
		if len(segs) == 0 {
			return nil, NewError("legacy chunk is missing a property name").
				WithToken(chunk).WithIndex(i).
				WithHint("each chunk needs <prop>:<type>")
		}
		if len(segs) < 2 {
			return nil, NewError("legacy chunk is missing a type").
				WithToken(chunk).WithIndex(i).
				WithHint("each chunk needs <prop>:<type>, e.g. email:s")
		}

		propPart := segs[0]
		if len(segs) >= 3 && segs[2] == "o" && !strings.HasSuffix(propPart, "?") {
			propPart += "?"
		}

		prop, err := resolveProperty(propPart, segs[1], true, cfg, i)
		if err != nil {
			return nil, err
		}
		model.Properties = append(model.Properties, prop)
	}

	if len(model.Properties) == 0 {
		return nil, NewError("legacy DSL has no properties").
			WithToken(body).
			WithHint("separate properties with '/': type:user-email:s/password:s")
	}

	return model, nil
}

// parseModern handles the space-delimited dialect: the first token is
// the type name, every following token is a property.
func parseModern(trimmed string, cfg Config) (*Model, error) {
	// Normalize the input to a single space-separated line
	s := strings.ReplaceAll(trimmed, "\r\n", "\n")
	s = strings.NewReplacer(",", " ", "\n", " ").Replace(s)
	s = whitespaceRunRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	namePart, rest, _ := strings.Cut(s, " ")
	rawName := stripQuotes(namePart)
	if rawName == "" {
		return nil, NewError("DSL is missing a type name").
			WithHint("start with the type name: User email:s")
	}

	tokens := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ' ' || r == '/'
	})
	if len(tokens) == 0 {
		return nil, NewError("DSL has no properties").
			WithToken(rawName).
			WithHint("add at least one property after the type name: User email:s")
	}

	model := &Model{TypeName: SanitizeTypeName(rawName)}
	for i, token := range tokens {
		token = strings.TrimSuffix(token, ";")

		if strings.HasSuffix(token, ":") {
			return nil, NewError("property has a dangling ':' with no type").
				WithToken(token).WithIndex(i).
				WithHint("give the property a type (email:s) or drop the ':' to infer one")
		}

		segs := splitNonEmpty(token, ":")
		if len(segs) == 0 {
			return nil, NewError("empty property token").
				WithIndex(i).
				WithHint("remove the stray separator or give the property a name")
		}

		var prop Property
		var err error
		if len(segs) >= 2 {
			propPart := stripQuotes(segs[0])
			if len(segs) >= 3 && segs[2] == "o" && !strings.HasSuffix(propPart, "?") {
				propPart += "?"
			}
			prop, err = resolveProperty(propPart, segs[1], true, cfg, i)
		} else {
			prop, err = resolveProperty(stripQuotes(segs[0]), "", false, cfg, i)
		}
		if err != nil {
			return nil, err
		}
		model.Properties = append(model.Properties, prop)
	}

	return model, nil
}

// resolveProperty finishes a raw property part shared by both dialects:
// strips the requiredness suffixes, sanitizes the name, and resolves the
// type either through the shorthand mapper or the inference engine.
// A trailing "!" forces required, a trailing "?" (checked after "!"
// removal) forces optional; with neither, requiredness falls back to the
// configuration default.
func resolveProperty(rawName, rawType string, hasType bool, cfg Config, index int) (Property, error) {
	name := rawName
	required := !cfg.OptionalByDefault

	if strings.HasSuffix(name, "!") {
		name = strings.TrimSuffix(name, "!")
		required = true
	}
	if strings.HasSuffix(name, "?") {
		name = strings.TrimSuffix(name, "?")
		required = false
	}

	if strings.TrimSpace(name) == "" {
		return Property{}, NewError("property name is empty").
			WithToken(rawName).WithIndex(index).
			WithHint("a property needs a name before its '!' or '?' marker")
	}

	sanitized := SanitizePropertyName(name)

	var resolved string
	if hasType {
		resolved = MapType(rawType)
	} else {
		resolved = InferType(sanitized)
	}

	return Property{Name: sanitized, IsRequired: required, ResolvedType: resolved}, nil
}

// splitNonEmpty splits s on sep and drops empty segments
func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// stripQuotes removes surrounding single or double quotes from a token
func stripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
