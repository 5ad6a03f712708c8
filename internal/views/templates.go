package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates static
var assets embed.FS

const (
	PageIndex   = "index"
	PageCompare = "compare"

	layoutName = "layout"
	pagesDir   = "templates/pages"
)

// TemplateManager хранит по одному набору шаблонов на страницу:
// общий layout + partials + сама страница.
// Реализует render.HTMLRender, чтобы gin рендерил страницы по имени.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает новый менеджер шаблонов
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// MustLoad загружает встроенные шаблоны или паникует (вызывается при старте)
func MustLoad() *TemplateManager {
	tm := NewTemplateManager()
	if err := tm.LoadTemplates(assets); err != nil {
		panic(err)
	}
	return tm
}

// LoadTemplates загружает шаблоны из файловой системы (embed или os.DirFS)
func (tm *TemplateManager) LoadTemplates(fsys fs.FS) error {
	shared, err := fs.Glob(fsys, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("failed to list shared templates: %w", err)
	}
	partials, err := fs.Glob(fsys, "templates/partials/*.tmpl")
	if err != nil {
		return fmt.Errorf("failed to list partials: %w", err)
	}
	shared = append(shared, partials...)

	return fs.WalkDir(fsys, pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(p, ".tmpl") {
			return nil
		}

		files := append(append([]string{}, shared...), p)
		tpl, err := template.New(layoutName).ParseFS(fsys, files...)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", p, err)
		}

		templateName := strings.TrimSuffix(path.Base(p), ".tmpl")
		tm.mutex.Lock()
		tm.templates[templateName] = tpl
		tm.mutex.Unlock()

		return nil
	})
}

// Instance реализует render.HTMLRender
func (tm *TemplateManager) Instance(name string, data any) render.Render {
	tpl := tm.GetTemplate(name)
	if tpl == nil {
		return render.String{Format: "template not found: %s", Data: []any{name}}
	}
	return render.HTML{Template: tpl, Name: layoutName, Data: data}
}

// Render рендерит страницу целиком в строку
func (tm *TemplateManager) Render(name string, data any) (string, error) {
	return tm.RenderBlock(name, layoutName, data)
}

// RenderBlock рендерит один именованный блок страницы (для тестов и фрагментов)
func (tm *TemplateManager) RenderBlock(name, block string, data any) (string, error) {
	tpl := tm.GetTemplate(name)
	if tpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.ExecuteTemplate(&buf, block, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GetTemplate возвращает шаблон по имени (для тестирования)
func (tm *TemplateManager) GetTemplate(name string) *template.Template {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()
	return tm.templates[name]
}

// TemplateNames возвращает отсортированный список имен загруженных шаблонов
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// StaticFS - встроенные script и stylesheet для /static
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
