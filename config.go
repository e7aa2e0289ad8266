// Copyright 2024 by The constage Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package constage

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Names of the environment variables that configure a staging run. All of
// them are required.
const (
	ProviderUsernameVar = "TDP_USERNAME"
	KeyVaultEndpointVar = "TDP_KEYVAULT"
	ConsumerUsernameVar = "TDC_USERNAME"
)

// Config is the staging configuration as picked up from the process
// environment.
type Config struct {
	ProviderUsername string // username of the trusted data provider
	KeyVaultEndpoint string // key vault endpoint for dataset key material
	ConsumerUsername string // username of the trusted data consumer
}

// LoadConfig returns the staging configuration from the process environment.
// If the optional envfile is non-empty, it is loaded dotenv-style first,
// without overriding variables already present in the environment. All three
// required variables must be set to non-empty values; a variable set to the
// empty string counts as unset.
func LoadConfig(envfile string) (*Config, error) {
	if envfile != "" {
		if err := godotenv.Load(envfile); err != nil {
			return nil, fmt.Errorf("cannot load env file %q, reason: %w", envfile, err)
		}
	}
	cfg := &Config{}
	for _, v := range []struct {
		name string
		into *string
	}{
		{ProviderUsernameVar, &cfg.ProviderUsername},
		{KeyVaultEndpointVar, &cfg.KeyVaultEndpoint},
		{ConsumerUsernameVar, &cfg.ConsumerUsername},
	} {
		value, err := requiredEnv(v.name)
		if err != nil {
			return nil, err
		}
		*v.into = value
	}
	return cfg, nil
}

// requiredEnv returns the value of the named environment variable, treating
// an empty value the same as an unset variable.
func requiredEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", name)
	}
	return value, nil
}
