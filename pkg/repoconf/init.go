package repoconf

import (
	"github.com/lerenn/repoconf/pkg/repoconf/consts"
	"github.com/lerenn/repoconf/pkg/template"
)

// InitParams contains parameters for Init.
type InitParams struct {
	Dir          string
	TemplateName string
	TemplateURL  string
	RepoName     string
	RemoteName   string
	BranchName   string
	SkipPostInit bool
}

// Init attaches a template to a freshly cloned repository.
func (r *realRepoConf) Init(params InitParams) error {
	hookParams := map[string]interface{}{
		"dir":          params.Dir,
		"templateName": params.TemplateName,
		"templateURL":  params.TemplateURL,
		"repoName":     params.RepoName,
		"remoteName":   params.RemoteName,
		"branchName":   params.BranchName,
		"skipPostInit": params.SkipPostInit,
	}

	return r.executeWithHooks(consts.Init, hookParams, func(s services) error {
		r.VerbosePrint("Initializing %s from template %s", params.Dir, params.TemplateName)
		return s.templates.Init(template.InitParams(params))
	})
}
