// Package loader registers gateway features and mounts their routes.
//
// A Feature names itself, reports whether it is enabled and registers its
// routes on a fiber.Router. The Manager keeps features in registration
// order; LoadAll skips disabled ones and stops at the first Load error.
//
//	mgr := loader.NewManager()
//	mgr.Register(objects.NewFeature(client, recorder, log))
//	if err := mgr.LoadAll(app); err != nil {
//	    log.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
