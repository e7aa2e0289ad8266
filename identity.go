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

// DID is a decentralized identifier in its string form, such as
// "did:web:alice.github.io".
type DID string

// String returns the identifier in its textual DID URI form.
func (d DID) String() string { return string(d) }

// WebDID returns the "did:web" identifier for a demo participant's Github
// pages host, derived from the participant's username. The username is used
// verbatim: the demo workflow controls the usernames, so no hostname
// legality checking takes place here.
func WebDID(username string) DID {
	return DID("did:web:" + username + ".github.io")
}

// Identities are the derived participant identifiers of a single staging
// run. They are immutable after construction.
type Identities struct {
	Provider DID // identity of the trusted data provider
	Consumer DID // identity of the trusted data consumer
}

// NewIdentities derives the participant identities from the staging
// configuration.
func NewIdentities(cfg *Config) Identities {
	return Identities{
		Provider: WebDID(cfg.ProviderUsername),
		Consumer: WebDID(cfg.ConsumerUsername),
	}
}
