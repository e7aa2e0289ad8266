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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/trusteddata/constage/interpolate"
)

// DefaultTemplatePath is where the demo workflow keeps the unstaged contract
// template.
const DefaultTemplatePath = "demo/contract/contract.json"

// DefaultOutputPath is where later demo steps expect to find the staged
// contract. Its parent directory is provisioned by the demo workflow, not by
// constage.
const DefaultOutputPath = "tmp/contracts/contract.json"

// Contract represents a loaded data sharing contract document.
type Contract struct {
	doc map[string]any
}

// LoadContract reads the JSON contract (template) document from the
// specified path. The file itself is never modified; all patching happens on
// the in-memory document only.
func LoadContract(path string) (*Contract, error) {
	jsontext, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read contract template, reason: %w", err)
	}
	c := &Contract{}
	if err := json.Unmarshal(jsontext, &c.doc); err != nil {
		return nil, fmt.Errorf("malformed contract template, reason: %w", err)
	}
	return c, nil
}

// Grant fills the participant identities and the key vault endpoint into the
// contract document: the consumer identity becomes the contract's “tdc”, the
// provider identity replaces the first “tdps” entry as well as every
// dataset's “provider”, and every dataset's key properties get pointed at
// the specified key vault endpoint. A contract without any datasets is
// acceptable; a contract lacking the “tdps” list or the nested key
// properties structure is not.
func (c *Contract) Grant(ids Identities, keyVaultEndpoint string) error {
	c.doc["tdc"] = ids.Consumer.String()
	log.Info(fmt.Sprintf("🪪  contract consumer: %q", ids.Consumer))

	tdps, err := lookupSlice(c.doc, "tdps")
	if err != nil {
		return fmt.Errorf("no data providers found, reason: %w", err)
	}
	if len(tdps) == 0 {
		return errors.New("tdps in contract must not be empty")
	}
	tdps[0] = ids.Provider.String()
	log.Info(fmt.Sprintf("🪪  contract provider: %q", ids.Provider))

	datasets, err := lookupSlice(c.doc, "datasets")
	if err != nil {
		return fmt.Errorf("no datasets found, reason: %w", err)
	}
	for idx := range datasets {
		dataset, ok := datasets[idx].(map[string]any)
		if !ok {
			return fmt.Errorf("dataset #%d in contract is not an object", idx)
		}
		dataset["provider"] = ids.Provider.String()
		key, err := lookupMap(dataset, "key")
		if err != nil {
			return fmt.Errorf("invalid dataset #%d, reason: %w", idx, err)
		}
		properties, err := lookupMap(key, "properties")
		if err != nil {
			return fmt.Errorf("invalid key of dataset #%d, reason: %w", idx, err)
		}
		properties["endpoint"] = keyVaultEndpoint
		log.Info(fmt.Sprintf("   🔑  dataset #%d key vault endpoint: %q",
			idx, keyVaultEndpoint))
	}
	return nil
}

// Interpolate expands compose-style “${VAR}” placeholders in all string
// values of the contract document, using the supplied variables. Templates
// shipped by the demo use placeholders for deployment-specific details
// beyond the participant identities, such as dataset locations.
func (c *Contract) Interpolate(vars map[string]string) error {
	doc, err := interpolate.Strings(c.doc, vars)
	if err != nil {
		return fmt.Errorf("cannot interpolate contract template, reason: %w", err)
	}
	c.doc = doc
	return nil
}

// Save writes the contract document to the specified io.Writer, returning an
// error in case of failure. Serialization is deterministic, so staging the
// same template with the same configuration twice produces identical bytes.
func (c *Contract) Save(w io.Writer) error {
	b, err := json.Marshal(c.doc)
	if err != nil {
		return fmt.Errorf("cannot JSONize contract, reason: %w", err)
	}
	_, err = w.Write(b)
	if err != nil {
		return fmt.Errorf("cannot write contract, reason: %w", err)
	}
	return nil
}

// WriteFile writes the contract document to the file at the specified path,
// overwriting any previous contents. The parent directory must already
// exist; constage deliberately doesn't create staging directories on its own
// as these are provisioned (and cleaned up) by the demo workflow.
func (c *Contract) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create staged contract file, reason: %w", err)
	}
	defer f.Close()
	return c.Save(f)
}

func lookupMap(doc map[string]any, key string) (map[string]any, error) {
	element := doc[key]
	if element == nil {
		return nil, fmt.Errorf("no %s found in contract", key)
	}
	m, ok := element.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s in contract is not an object", key)
	}
	return m, nil
}

func lookupSlice(doc map[string]any, key string) ([]any, error) {
	element := doc[key]
	if element == nil {
		return nil, fmt.Errorf("no %s found in contract", key)
	}
	s, ok := element.([]any)
	if !ok {
		return nil, fmt.Errorf("%s in contract is not an array", key)
	}
	return s, nil
}
