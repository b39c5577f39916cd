// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from process environment variables. The mapping is
// driven by the `env` and `envPrefix` struct tags on [StructuredConfig]
// and the nested sections it carries, so the admin API can be configured
// entirely from the environment in container deployments.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
