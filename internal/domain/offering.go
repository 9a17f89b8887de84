package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type OfferingKey string

// Offering is a deployable template ("egg") on the panel.
type Offering struct {
	Key         OfferingKey
	DisplayName string
	NestID      int
	EggID       int
	DockerImage string
	Startup     string
	Environment map[string]string
}

var (
	offeringKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	placeholderPattern = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
	placeholderName    = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

func (o Offering) Validate() error {
	if !offeringKeyPattern.MatchString(string(o.Key)) {
		return fmt.Errorf("offering key %q is invalid", o.Key)
	}
	if strings.TrimSpace(o.DisplayName) == "" {
		return fmt.Errorf("offering %s: display name is required", o.Key)
	}
	if o.NestID <= 0 {
		return fmt.Errorf("offering %s: nest id must be positive, got %d", o.Key, o.NestID)
	}
	if o.EggID <= 0 {
		return fmt.Errorf("offering %s: egg id must be positive, got %d", o.Key, o.EggID)
	}
	if strings.TrimSpace(o.DockerImage) == "" {
		return fmt.Errorf("offering %s: docker image is required", o.Key)
	}
	if strings.TrimSpace(o.Startup) == "" {
		return fmt.Errorf("offering %s: startup command is required", o.Key)
	}
	if err := validateStartupTemplate(o.Startup); err != nil {
		return fmt.Errorf("offering %s: %w", o.Key, err)
	}

	return nil
}

// validateStartupTemplate accepts only {{UPPER_SNAKE}} placeholders with
// balanced braces.
func validateStartupTemplate(startup string) error {
	for _, match := range placeholderPattern.FindAllStringSubmatch(startup, -1) {
		if !placeholderName.MatchString(match[1]) {
			return fmt.Errorf("startup placeholder %q is malformed", match[0])
		}
	}

	stripped := placeholderPattern.ReplaceAllString(startup, "")
	if strings.Contains(stripped, "{{") || strings.Contains(stripped, "}}") {
		return fmt.Errorf("startup template %q has unbalanced braces", startup)
	}

	return nil
}

// Catalog is an immutable, indexed set of offerings.
type Catalog struct {
	byKey map[OfferingKey]Offering
	keys  []OfferingKey
}

func NewCatalog(offerings []Offering) (*Catalog, error) {
	if len(offerings) == 0 {
		return nil, fmt.Errorf("offering catalog is empty")
	}

	c := &Catalog{byKey: make(map[OfferingKey]Offering, len(offerings))}
	for _, offering := range offerings {
		if err := offering.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byKey[offering.Key]; ok {
			return nil, fmt.Errorf("offering %s is defined twice", offering.Key)
		}

		env := make(map[string]string, len(offering.Environment))
		for k, v := range offering.Environment {
			env[k] = v
		}
		offering.Environment = env

		c.byKey[offering.Key] = offering
		c.keys = append(c.keys, offering.Key)
	}
	sort.Slice(c.keys, func(i, j int) bool { return c.keys[i] < c.keys[j] })

	return c, nil
}

func (c *Catalog) Get(key OfferingKey) (Offering, bool) {
	offering, ok := c.byKey[OfferingKey(strings.ToLower(strings.TrimSpace(string(key))))]
	return offering, ok
}

func (c *Catalog) Keys() []OfferingKey {
	keys := make([]OfferingKey, len(c.keys))
	copy(keys, c.keys)
	return keys
}

func (c *Catalog) List() []Offering {
	offerings := make([]Offering, 0, len(c.keys))
	for _, key := range c.keys {
		offerings = append(offerings, c.byKey[key])
	}
	return offerings
}

// MergeEnvironment overlays overlay onto defaults. A default only survives for
// keys the overlay leaves absent or empty. The result never aliases its inputs,
// and MergeEnvironment(MergeEnvironment(d, o), o) equals MergeEnvironment(d, o).
func MergeEnvironment(defaults, overlay map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overlay))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overlay {
		if v == "" {
			continue
		}
		merged[k] = v
	}
	for k, v := range defaults {
		if merged[k] == "" {
			merged[k] = v
		}
	}

	return merged
}

func DefaultEnvironment() map[string]string {
	return map[string]string{
		"SERVER_JARFILE":    "server.jar",
		"EULA":              "TRUE",
		"VERSION":           "latest",
		"BUILD_NUMBER":      "latest",
		"SPONGE_VERSION":    "stable-7",
		"FORGE_VERSION":     "latest",
		"MINECRAFT_VERSION": "latest",
	}
}

func DefaultOfferings() []Offering {
	return []Offering{
		{
			Key:         "paper",
			DisplayName: "Minecraft: Paper",
			NestID:      1,
			EggID:       3,
			DockerImage: "ghcr.io/pterodactyl/yolks:java_21",
			Startup:     "java -Xms128M -XX:MaxRAMPercentage=95.0 -Dterminal.jline=false -Dterminal.ansi=true -jar {{SERVER_JARFILE}}",
			Environment: map[string]string{
				"MINECRAFT_VERSION": "latest",
				"SERVER_JARFILE":    "server.jar",
				"BUILD_NUMBER":      "latest",
				"EULA":              "TRUE",
			},
		},
		{
			Key:         "forge",
			DisplayName: "Minecraft: Forge",
			NestID:      1,
			EggID:       4,
			DockerImage: "ghcr.io/pterodactyl/yolks:java_17",
			Startup:     "java -Xms128M -Xmx{{SERVER_MEMORY}}M -jar {{SERVER_JARFILE}}",
			Environment: map[string]string{
				"SERVER_JARFILE": "server.jar",
				"BUILD_TYPE":     "recommended",
				"VERSION":        "1.20.1",
			},
		},
		{
			Key:         "sponge",
			DisplayName: "Minecraft: Sponge",
			NestID:      1,
			EggID:       6,
			DockerImage: "ghcr.io/pterodactyl/yolks:java_11",
			Startup:     "java -Xms128M -Xmx{{SERVER_MEMORY}}M -jar {{SERVER_JARFILE}}",
			Environment: map[string]string{
				"SERVER_JARFILE":    "server.jar",
				"SPONGE_VERSION":    "stable-7",
				"MINECRAFT_VERSION": "1.12.2",
				"EULA":              "TRUE",
			},
		},
		{
			Key:         "nodejs",
			DisplayName: "Node.js",
			NestID:      5,
			EggID:       16,
			DockerImage: "ghcr.io/pterodactyl/yolks:nodejs_18",
			Startup:     "node index.js",
			Environment: map[string]string{"STARTUP_FILE": "index.js"},
		},
		{
			Key:         "python",
			DisplayName: "Python",
			NestID:      5,
			EggID:       17,
			DockerImage: "ghcr.io/pterodactyl/yolks:python_3.11",
			Startup:     "python3 main.py",
			Environment: map[string]string{"STARTUP_FILE": "main.py"},
		},
		{
			Key:         "mariadb",
			DisplayName: "MariaDB",
			NestID:      7,
			EggID:       20,
			DockerImage: "ghcr.io/pterodactyl/yolks:debian",
			Startup:     "mysqld --defaults-file=/mnt/server/my.cnf",
			Environment: map[string]string{"MYSQL_ROOT_PASSWORD": "root", "MYSQL_DATABASE": "panel"},
		},
	}
}
