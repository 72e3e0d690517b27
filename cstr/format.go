/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cstr

import "fmt"

// NewFormatted measures then renders format/args through fmt.Sprintf,
// the host's formatted-print collaborator, into a freshly allocated
// String sized exactly to the rendered content.
func NewFormatted(format string, args ...any) *String {
	return NewFromBytes([]byte(fmt.Sprintf(format, args...)))
}
