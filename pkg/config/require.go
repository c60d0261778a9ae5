package config

import "log"

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("config: missing required env %s", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("config: missing required env %s", envName)
	}
}
