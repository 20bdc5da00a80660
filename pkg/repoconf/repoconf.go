// Package repoconf wires the template operations of the repoconf tool together.
package repoconf

import (
	"fmt"

	"github.com/lerenn/repoconf/pkg/config"
	"github.com/lerenn/repoconf/pkg/dependencies"
	"github.com/lerenn/repoconf/pkg/hooks"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/merge"
	"github.com/lerenn/repoconf/pkg/propagate"
	"github.com/lerenn/repoconf/pkg/remote"
	"github.com/lerenn/repoconf/pkg/template"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=repoconf.go -destination=mocks/repoconf.gen.go -package=mocks

// RepoConf interface is the entry point of every repoconf command.
type RepoConf interface {
	// Add registers a template remote on a repository.
	Add(params AddParams) error
	// Init attaches a template to a freshly cloned repository.
	Init(params InitParams) error
	// Merge merges every template remote into a repository and pushes.
	Merge(params MergeParams) error
	// Propagate runs Merge on every repository below a directory.
	Propagate(params PropagateParams) error
	// SetLogger sets the logger for this RepoConf instance.
	SetLogger(logger logger.Logger)
}

// NewRepoConfParams contains parameters for creating a new RepoConf instance.
type NewRepoConfParams struct {
	Dependencies *dependencies.Dependencies
}

type realRepoConf struct {
	deps *dependencies.Dependencies
}

// services are rebuilt from the configuration on every operation.
type services struct {
	config     config.Config
	discovery  remote.Discovery
	merger     merge.Merger
	propagator propagate.Propagator
	templates  template.Manager
}

// NewRepoConf creates a new RepoConf instance.
func NewRepoConf(params NewRepoConfParams) (RepoConf, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDependencies, err)
	}

	return &realRepoConf{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (r *realRepoConf) VerbosePrint(msg string, args ...interface{}) {
	if r.deps.Logger != nil {
		r.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this RepoConf instance, command echoes included.
func (r *realRepoConf) SetLogger(log logger.Logger) {
	r.deps.Logger = log
	if s, ok := r.deps.Git.(interface{ SetLogger(logger.Logger) }); ok {
		s.SetLogger(log)
	}
}

func (r *realRepoConf) services() (services, error) {
	cfg, err := r.deps.Config.GetConfigWithFallback()
	if err != nil {
		return services{}, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	discovery := remote.NewDiscovery(remote.NewDiscoveryParams{
		Git:    r.deps.Git,
		Prefix: cfg.RemotePrefix,
	})
	merger := merge.NewMerger(merge.NewMergerParams{
		FS:        r.deps.FS,
		Git:       r.deps.Git,
		Discovery: discovery,
		Logger:    r.deps.Logger,
	})
	runner := hooks.NewRunner(hooks.NewRunnerParams{
		FS:     r.deps.FS,
		Shell:  r.deps.Shell,
		Logger: r.deps.Logger,
	})

	return services{
		config:    cfg,
		discovery: discovery,
		merger:    merger,
		propagator: propagate.NewPropagator(propagate.NewPropagatorParams{
			FS:     r.deps.FS,
			Merger: merger,
			Logger: r.deps.Logger,
		}),
		templates: template.NewManager(template.NewManagerParams{
			FS:           r.deps.FS,
			Git:          r.deps.Git,
			Discovery:    discovery,
			Hooks:        runner,
			Logger:       r.deps.Logger,
			PostInitHook: cfg.PostInitHook,
		}),
	}, nil
}

// executeWithHooks executes an operation with pre and post hooks.
func (r *realRepoConf) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(s services) error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}

	if err := r.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return err
	}

	resultErr := r.run(operationName, operation)

	ctx.Error = resultErr
	if resultErr != nil {
		if hookErr := r.deps.HookManager.ExecuteErrorHooks(operationName, ctx); hookErr != nil {
			return hookErr
		}
		return resultErr
	}

	ctx.Results["success"] = true
	return r.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

func (r *realRepoConf) run(operationName string, operation func(s services) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, p)
		}
	}()

	s, err := r.services()
	if err != nil {
		return err
	}
	return operation(s)
}
