package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
	"github.com/tidwall/gjson"
)

// environment binds the recognized keys from a flat string map: the process
// environment, a parsed .env file, or the global file's environments map.
type environment struct {
	APIKey        string `env:"LOKALISE_API_KEY"`
	APIHostname   string `env:"LOKALISE_API_HOSTNAME"`
	TransportMode string `env:"TRANSPORT_MODE"`
	Port          string `env:"PORT"`
	Debug         string `env:"DEBUG"`
	Environment   string `env:"NODE_ENV"`
	ServerMode    string `env:"MCP_SERVER_MODE"`
}

// readEnvironment binds vars and coerces the results. Numeric and boolean
// fields that do not parse are dropped rather than failing the source.
func readEnvironment(vars map[string]string) map[string]string {
	var raw environment
	if err := env.ParseWithOptions(&raw, env.Options{Environment: vars}); err != nil {
		log.Warn("failed to bind environment", "err", err)
		return nil
	}

	out := make(map[string]string)
	put := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			out[key] = v
		}
	}

	put(KeyAPIKey, raw.APIKey)
	put(KeyAPIHostname, raw.APIHostname)
	put(KeyTransportMode, raw.TransportMode)
	put(KeyEnvironment, raw.Environment)

	if p := strings.TrimSpace(raw.Port); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			out[KeyPort] = strconv.Itoa(n)
		} else {
			log.Debug("ignoring non-numeric PORT", "value", p)
		}
	}

	if d := strings.TrimSpace(raw.Debug); d != "" {
		if b, ok := boolLike(d); ok {
			out[KeyDebug] = strconv.FormatBool(b)
		} else {
			out[KeyDebug] = d
		}
	}

	if m := strings.TrimSpace(raw.ServerMode); m != "" {
		if b, ok := boolLike(m); ok {
			out[KeyServerMode] = strconv.FormatBool(b)
		} else {
			log.Debug("ignoring non-boolean MCP_SERVER_MODE", "value", m)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// readDotenv parses a .env file. A missing file contributes nothing.
func readDotenv(path string) map[string]string {
	if path == "" {
		return nil
	}
	vars, err := gotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read .env file", "path", path, "err", err)
		}
		return nil
	}
	return readEnvironment(vars)
}

// globalEntry is one package's section of ~/.mcp/configs.json.
type globalEntry struct {
	Environments map[string]any `json:"environments"`
}

// readGlobalFile parses the global config file. A missing or malformed file
// contributes nothing.
func readGlobalFile(path string) map[string]string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read global config", "path", path, "err", err)
		}
		return nil
	}

	var file map[string]globalEntry
	if err := json.Unmarshal(data, &file); err != nil {
		log.Warn("failed to parse global config", "path", path, "err", err)
		return nil
	}

	for _, name := range packageAliases {
		entry, ok := file[name]
		if !ok || len(entry.Environments) == 0 {
			continue
		}
		vars := make(map[string]string, len(entry.Environments))
		for k, v := range entry.Environments {
			if s, ok := scalarString(v); ok {
				vars[k] = s
			}
		}
		log.Debug("loaded global config", "path", path, "section", name)
		return readEnvironment(vars)
	}
	return nil
}

// smitheryKeys are the only keys a Smithery payload may carry.
var smitheryKeys = map[string]bool{
	KeyAPIKey:      true,
	KeyAPIHostname: true,
	KeyDebug:       true,
	keyDebugMode:   true,
}

// parseSmithery decodes and strictly validates a Smithery config parameter.
func parseSmithery(encoded string) (map[string]string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, nil
	}

	data, err := decodeBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("config parameter is not valid base64: %w", err)
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("config parameter is not a JSON object")
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("config parameter is not a JSON object: %w", err)
	}
	return parseObject(payload, true)
}

func decodeBase64(s string) ([]byte, error) {
	var lastErr error
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		data, err := enc.DecodeString(s)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// parseQuery turns query-string parameters into a layer.
func parseQuery(query url.Values) (map[string]string, error) {
	payload := make(map[string]any, len(query))
	for k, vs := range query {
		if k == "config" || len(vs) == 0 {
			continue
		}
		payload[k] = vs[0]
	}
	return parseObject(payload, false)
}

// parseObject validates a decoded JSON object. Recognized keys must carry
// the right type or the whole object is rejected. Unrecognized keys pass
// through as strings unless strict is set, in which case they reject the
// object.
func parseObject(payload map[string]any, strict bool) (map[string]string, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(payload))
	for _, k := range keys {
		v := payload[k]
		if v == nil {
			continue
		}
		if strict && !smitheryKeys[k] {
			return nil, fmt.Errorf("unrecognized key %q", k)
		}

		switch k {
		case KeyAPIKey, KeyTransportMode, KeyEnvironment:
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a string", k)
			}
			if s = strings.TrimSpace(s); s != "" {
				out[k] = s
			}

		case KeyAPIHostname:
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a string", k)
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			u, err := url.Parse(s)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return nil, fmt.Errorf("%s must be an absolute http(s) URL", k)
			}
			out[k] = s

		case KeyPort:
			n, err := intValue(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = strconv.Itoa(n)

		case KeyDebug:
			switch d := v.(type) {
			case bool:
				out[k] = strconv.FormatBool(d)
			case string:
				if d = strings.TrimSpace(d); d != "" {
					if b, ok := boolLike(d); ok {
						out[k] = strconv.FormatBool(b)
					} else {
						out[k] = d
					}
				}
			default:
				return nil, fmt.Errorf("%s must be a boolean or a pattern string", k)
			}

		case keyDebugMode, KeyServerMode:
			b, err := boolValue(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = strconv.FormatBool(b)

		default:
			if s, ok := scalarString(v); ok && s != "" {
				out[k] = s
			}
		}
	}

	if dm, ok := out[keyDebugMode]; ok {
		out[KeyDebug] = dm
		delete(out, keyDebugMode)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func intValue(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("must be an integer")
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return int(i), nil
	case int:
		return n, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return i, nil
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}

func boolValue(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, ok := boolLike(b); ok {
			return parsed, nil
		}
	}
	return false, fmt.Errorf("must be a boolean")
}

// boolLike recognizes true/false/1/0 in any case.
func boolLike(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case json.Number:
		return s.String(), true
	case int:
		return strconv.Itoa(s), true
	}
	return "", false
}
