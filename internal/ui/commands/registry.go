// Package commands defines the builtin palette commands and exposes
// them as prompt options.
package commands

import (
	"context"
	"log"

	"codedeck/internal/config"
	"codedeck/internal/eventbus"
	"codedeck/internal/history"
	"codedeck/internal/i18n"
	"codedeck/internal/ui/prompt"
	"codedeck/internal/workspace"
)

// Deps wires the registry to the rest of the application
type Deps struct {
	State      *workspace.State
	Config     *config.Config
	ConfigSvc  config.ConfigService
	Translator *i18n.Translator
	Bus        eventbus.EventBus
	History    *history.Store

	// Model-level callbacks
	RequestQuit  func()
	OpenSettings func()
	ShowLog      func()
}

// Registry builds the current palette option list
type Registry struct {
	deps Deps
}

// NewRegistry creates a command registry
func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

// IDs returns the ids of all commands the registry can currently offer
func (r *Registry) IDs() []string {
	ids := make([]string, 0, 16)
	for _, opt := range r.Options() {
		ids = append(ids, opt.ID)
	}
	return ids
}

// Options builds the palette options for the current application state.
// The list is rebuilt per prompt session so labels (active tab title,
// locale names) stay current.
func (r *Registry) Options() []prompt.Option {
	opts := []prompt.Option{
		r.option("workbench.openSettings", i18n.T("command.open_settings"), func() {
			if r.deps.OpenSettings != nil {
				r.deps.OpenSettings()
			}
		}),
		r.option("workbench.newTab", i18n.T("command.new_tab"), func() {
			if _, err := r.deps.State.OpenTab("", ""); err != nil {
				r.reportError("opening tab", err)
			}
		}),
	}

	if active, ok := r.deps.State.ActiveTab(); ok {
		opts = append(opts, r.option("workbench.closeTab",
			i18n.TP("command.close_tab", map[string]string{"title": active.Title}),
			func() {
				if _, err := r.deps.State.CloseTab(active.ID); err != nil {
					r.reportError("closing tab", err)
				}
			}))
	}

	opts = append(opts,
		r.option("workbench.nextTab", i18n.T("command.next_tab"), func() {
			if err := r.deps.State.CycleTab(1); err != nil {
				r.reportError("cycling tab", err)
			}
		}),
		r.option("workbench.previousTab", i18n.T("command.previous_tab"), func() {
			if err := r.deps.State.CycleTab(-1); err != nil {
				r.reportError("cycling tab", err)
			}
		}),
		r.option("workbench.splitPanel", i18n.T("command.split_panel"), func() {
			if err := r.deps.State.SplitPanel(); err != nil {
				r.reportError("splitting panel", err)
			}
		}),
	)

	for _, locale := range r.deps.Translator.Locales() {
		if locale == r.deps.Translator.Locale() {
			continue
		}
		opts = append(opts, r.option("workbench.changeLocale."+locale,
			i18n.TP("command.change_locale", map[string]string{"locale": locale}),
			func() { r.changeLocale(locale) }))
	}

	opts = append(opts,
		r.option("workbench.showLog", i18n.T("command.show_log"), func() {
			if r.deps.ShowLog != nil {
				r.deps.ShowLog()
			}
		}),
		r.option("workbench.saveWorkspace", i18n.T("command.save_workspace"), func() {
			if err := r.deps.State.Save(); err != nil {
				r.reportError("saving workspace", err)
			}
		}),
		r.option("workbench.quit", i18n.T("command.quit"), func() {
			if r.deps.RequestQuit != nil {
				r.deps.RequestQuit()
			}
		}),
	)

	return opts
}

// Recent returns the most recently invoked command ids
func (r *Registry) Recent(limit int) []string {
	if r.deps.History == nil {
		return nil
	}
	recent, err := r.deps.History.Recent(context.Background(), limit)
	if err != nil {
		log.Printf("commands: reading history: %v", err)
		return nil
	}
	return recent
}

func (r *Registry) option(id string, label i18n.Descriptor, run func()) prompt.Option {
	return prompt.Option{
		ID:    id,
		Label: label,
		OnSelected: func(ctx prompt.SelectContext) {
			r.record(id)
			if r.deps.Bus != nil {
				r.deps.Bus.Publish(eventbus.CommandInvokedEvent{CommandID: id})
			}
			run()
			ctx.ClosePrompt()
		},
	}
}

func (r *Registry) record(id string) {
	if r.deps.History == nil {
		return
	}
	if err := r.deps.History.Record(context.Background(), id); err != nil {
		log.Printf("commands: recording history: %v", err)
	}
}

func (r *Registry) changeLocale(locale string) {
	if err := r.deps.Translator.SetLocale(locale); err != nil {
		r.reportError("changing locale", err)
		return
	}
	if r.deps.Config != nil {
		r.deps.Config.Locale = locale
		if r.deps.ConfigSvc != nil {
			if err := r.deps.ConfigSvc.Save(r.deps.Config); err != nil {
				r.reportError("saving config", err)
			}
		}
	}
	if r.deps.Bus != nil {
		r.deps.Bus.Publish(eventbus.LocaleChangedEvent{Locale: locale})
	}
}

func (r *Registry) reportError(what string, err error) {
	log.Printf("commands: %s: %v", what, err)
	if r.deps.Bus != nil {
		r.deps.Bus.Publish(eventbus.ErrorEvent{Message: what, Err: err})
	}
}
