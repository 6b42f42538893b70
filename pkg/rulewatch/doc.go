// Package rulewatch reloads YAML rule files when they change on disk.
//
//	w, err := rulewatch.New(path, rulewatch.WithLogger(log))
//	go w.Watch(ctx, func() error {
//		c, err := build()
//		if err != nil {
//			return err // the previous classifier stays in service
//		}
//		swappable.Swap(c)
//		return nil
//	})
//
// Bursts of events (editors often write, truncate and rename) collapse into
// one reload after the debounce period.
package rulewatch
