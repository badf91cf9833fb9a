package theme

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"text/template"
)

// guardTmpl is the early-paint script. It runs in <head> before the stylesheet applies and
// repeats the Resolve decision against document.cookie and matchMedia. Failures are silent,
// the server-rendered class stays in place.
var guardTmpl = template.Must(template.New("guard").Parse(`(function(){try{` +
	`var root=document.documentElement,stored=null,parts=document.cookie.split(';');` +
	`for(var i=0;i<parts.length;i++){var p=parts[i].trim();` +
	`if(p.indexOf('{{js .Key}}=')===0){stored=decodeURIComponent(p.substring({{.Skip}}));break;}}` +
	`{{range .Decisions}}if(stored==='{{js .Stored}}'){root.classList.toggle('{{js $.Class}}',{{.Theme.IsDark}});return;}{{end}}` +
	`root.classList.toggle('{{js .Class}}',window.matchMedia('(prefers-color-scheme: dark)').matches);` +
	`}catch(e){}})();`))

var guardScript, guardHash = mustRenderGuard()

func mustRenderGuard() (script, hash string) {
	var buf bytes.Buffer
	data := struct {
		Key       string
		Skip      int // length of "key="
		Class     string
		Decisions []Decision
	}{Key: Key, Skip: len(Key) + 1, Class: DarkClass, Decisions: Decisions}
	if err := guardTmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("theme: can't render guard script: %v", err))
	}
	sum := sha256.Sum256(buf.Bytes())
	return buf.String(), "sha256-" + base64.StdEncoding.EncodeToString(sum[:])
}

// GuardScript returns the inline early-paint script. It must be placed in <head> verbatim.
func GuardScript() string { return guardScript }

// GuardHash returns the CSP source expression ('sha256-...' without quotes) matching GuardScript.
func GuardHash() string { return guardHash }
