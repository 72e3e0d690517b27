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

import (
	"github.com/nilxtext/unitext"
	"github.com/nilxtext/unitext/transcode"
)

// ScalarCount reports the number of Unicode scalar values s's content
// decodes to. It does not re-implement UTF-8 decoding: it leans on the
// transcode package's UTF-8 decode automaton opaquely, the same way this
// string container treats transcoding as a collaborator rather than a
// responsibility of its own. A nil handle has zero scalars. An invalid
// UTF-8 byte still contributes one scalar, matching Convert's
// replacement-mode accounting (see transcode.UTF8ToUTF32Length).
func ScalarCount(s *String) (int, error) {
	if s == nil {
		return 0, nil
	}
	n, _, err := transcode.UTF8ToUTF32Length(s.Bytes(), unitext.NativeEndian, 0, false)
	return n, err
}
