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

/*
Package constage stages data sharing contracts for the trusted data sharing
demo workflow.

A contract template is a JSON document naming a trusted data consumer
(“tdc”), one or more trusted data providers (“tdps”), and the datasets being
shared. constage fills in the participant identities and key vault locations
that are only known at demo deployment time: it derives “did:web”
decentralized identifiers from the configured provider and consumer
usernames, patches the template document in memory, and writes the staged
contract to where the follow-up demo steps (such as contract signing) expect
it.

The required configuration comes from the process environment (optionally
topped up from a dotenv file):
  - TDP_USERNAME: username of the trusted data provider
  - TDP_KEYVAULT: key vault endpoint holding the dataset key material
  - TDC_USERNAME: username of the trusted data consumer

All three must be set to non-empty values; staging fails fast otherwise and
leaves no (partial) output behind.
*/
package constage
