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

package transcode

import (
	"github.com/nilxtext/unitext"
	"github.com/nilxtext/unitext/endian"
)

// DetectBOM tries every recognized byte order mark against b and reports
// the encoding and byte order it belongs to, for callers that don't know
// the source encoding ahead of time. It does not consume b or otherwise
// affect Convert/MeasuredLength, which perform their own BOM handling
// internally.
func DetectBOM(b []byte) (enc unitext.Encoding, order unitext.Endian, ok bool) {
	return endian.DetectBOM(b)
}
