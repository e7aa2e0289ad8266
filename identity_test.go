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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("participant identities", func() {

	It("derives did:web identifiers from usernames", func() {
		Expect(WebDID("alice")).To(Equal(DID("did:web:alice.github.io")))
		Expect(WebDID("hellorld-tdp").String()).To(
			Equal("did:web:hellorld-tdp.github.io"))
	})

	It("uses usernames verbatim, warts and all", func() {
		// hostname legality is the demo workflow's problem, not ours.
		Expect(WebDID("Ümlaut User")).To(Equal(DID("did:web:Ümlaut User.github.io")))
	})

	It("derives both participant identities from the configuration", func() {
		ids := NewIdentities(&Config{
			ProviderUsername: "alice",
			ConsumerUsername: "bob",
		})
		Expect(ids.Provider).To(Equal(DID("did:web:alice.github.io")))
		Expect(ids.Consumer).To(Equal(DID("did:web:bob.github.io")))
	})

})
