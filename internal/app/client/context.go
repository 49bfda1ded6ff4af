package client

import "context"

type appKey struct{}

// WithApp кладет app в ctx для команд CLI.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// FromContext возвращает App, сохранённый WithApp, или nil.
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(appKey{}).(*App)
	return app
}
