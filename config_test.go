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
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("staging configuration", Serial, func() {

	// setenv sets an environment variable for the duration of the spec,
	// restoring the previous state afterwards.
	setenv := func(name, value string) {
		old, had := os.LookupEnv(name)
		Expect(os.Setenv(name, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				Expect(os.Setenv(name, old)).To(Succeed())
				return
			}
			Expect(os.Unsetenv(name)).To(Succeed())
		})
	}

	unsetenv := func(name string) {
		old, had := os.LookupEnv(name)
		Expect(os.Unsetenv(name)).To(Succeed())
		DeferCleanup(func() {
			if had {
				Expect(os.Setenv(name, old)).To(Succeed())
			}
		})
	}

	BeforeEach(func() {
		unsetenv(ProviderUsernameVar)
		unsetenv(KeyVaultEndpointVar)
		unsetenv(ConsumerUsernameVar)
	})

	It("loads the configuration from the environment", func() {
		setenv(ProviderUsernameVar, "alice")
		setenv(KeyVaultEndpointVar, "https://vault.example")
		setenv(ConsumerUsernameVar, "bob")
		cfg := Successful(LoadConfig(""))
		Expect(cfg.ProviderUsername).To(Equal("alice"))
		Expect(cfg.KeyVaultEndpoint).To(Equal("https://vault.example"))
		Expect(cfg.ConsumerUsername).To(Equal("bob"))
	})

	It("loads the configuration from a dotenv file", func() {
		cfg := Successful(LoadConfig("testdata/env/staging.env"))
		Expect(cfg.ProviderUsername).To(Equal("alice"))
		Expect(cfg.KeyVaultEndpoint).To(Equal("https://vault.example"))
		Expect(cfg.ConsumerUsername).To(Equal("bob"))
	})

	It("doesn't let the dotenv file override the environment", func() {
		setenv(ProviderUsernameVar, "carol")
		cfg := Successful(LoadConfig("testdata/env/staging.env"))
		Expect(cfg.ProviderUsername).To(Equal("carol"))
		Expect(cfg.ConsumerUsername).To(Equal("bob"))
	})

	It("names the variable that is missing", func() {
		setenv(KeyVaultEndpointVar, "https://vault.example")
		setenv(ConsumerUsernameVar, "bob")
		Expect(LoadConfig("")).Error().To(MatchError(
			ContainSubstring(ProviderUsernameVar)))

		setenv(ProviderUsernameVar, "alice")
		unsetenv(ConsumerUsernameVar)
		Expect(LoadConfig("")).Error().To(MatchError(
			ContainSubstring(ConsumerUsernameVar)))

		setenv(ConsumerUsernameVar, "bob")
		unsetenv(KeyVaultEndpointVar)
		Expect(LoadConfig("")).Error().To(MatchError(
			ContainSubstring(KeyVaultEndpointVar)))
	})

	It("treats an empty variable the same as an unset one", func() {
		setenv(ProviderUsernameVar, "")
		setenv(KeyVaultEndpointVar, "https://vault.example")
		setenv(ConsumerUsernameVar, "bob")
		Expect(LoadConfig("")).Error().To(MatchError(
			ContainSubstring(ProviderUsernameVar)))
	})

	It("reports an unreadable dotenv file", func() {
		Expect(LoadConfig("/nothing-nada-nil.env")).Error().To(MatchError(
			ContainSubstring("cannot load env file")))
	})

})
