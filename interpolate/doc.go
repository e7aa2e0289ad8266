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
Package interpolate expands environment variable placeholders in the string
values of (recursive) JSON-like documents.

The placeholder syntax is a subset of the Bash-like dialect known from
Compose project files:

	${FOO}
	${FOO:-default}
	${FOO:?error message}
	$FOO
	$$

“${FOO}” and “$FOO” substitute the variable's value, or the empty string for
an unset variable. “${FOO:-default}” substitutes “default” whenever FOO is
unset or empty. “${FOO:?error message}” aborts interpolation with the given
message whenever FOO is unset or empty. “$$” produces a literal dollar sign.
Contrary to Compose, alternate values don't nest: defaults and error
messages are taken literally.
*/
package interpolate
