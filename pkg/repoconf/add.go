package repoconf

import (
	"github.com/lerenn/repoconf/pkg/repoconf/consts"
	"github.com/lerenn/repoconf/pkg/template"
)

// AddParams contains parameters for Add.
type AddParams struct {
	// Dir defaults to the current directory.
	Dir         string
	TemplateURL string
}

// Add registers a template remote on a repository.
func (r *realRepoConf) Add(params AddParams) error {
	hookParams := map[string]interface{}{
		"dir":         params.Dir,
		"templateURL": params.TemplateURL,
	}

	return r.executeWithHooks(consts.Add, hookParams, func(s services) error {
		r.VerbosePrint("Adding template %s", params.TemplateURL)
		return s.templates.Add(template.AddParams{
			Dir:         params.Dir,
			TemplateURL: params.TemplateURL,
		})
	})
}
