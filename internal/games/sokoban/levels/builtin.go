package levels

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*.lvl builtin/pack.yaml
var builtinFS embed.FS

// Builtin returns a loader for the level pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// unreachable: the embed pattern above includes the directory
		panic(err)
	}
	return &Loader{FS: sub, Root: "builtin"}
}
