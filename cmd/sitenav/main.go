package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/sitenav/nav"
	"github.com/ancientlore/sitenav/virtual"
	"github.com/ancientlore/sitenav/web"
	"github.com/facebookgo/flagenv"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang/groupcache"
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fAddr              = flag.String("addr", ":8080", "Server address.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the page cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long rendered pages stay cached.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
	)
	flag.Parse()
	flagenv.Parse()

	// Setup groupcache (no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Create the virtual file system
	fs, err := virtual.New(os.DirFS(*fRoot))
	if err != nil {
		log.Printf("Cannot load site %q: %s", *fRoot, err)
		os.Exit(1)
	}
	cfg := fs.Config()
	log.Printf("Loaded site from %q", *fRoot)

	// Create the cached file system
	cachedFileSystem := cachefs.New(fs, &cachefs.Config{GroupName: "sitenav", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})

	// Pages and files
	site := web.HeaderHandler(
		web.ExpiresHandler(
			// error pages are read from the uncached fs; their menu depends on the request path
			web.ErrorHandler(
				http.FileServer(http.FS(cachedFileSystem)),
				fs,
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if p := cfg.Nav.Options().ScriptPath; strings.HasPrefix(p, "/") {
		r.Method(http.MethodGet, p, web.HeaderHandler(
			web.ExpiresHandler(
				web.AssetHandler("text/javascript; charset=utf-8", nav.Script, time.Now()),
				0,
				time.Duration(cfg.StaticExpires),
			),
			cfg.Headers))
		log.Printf("Serving menu script at %q", p)
	}
	r.Handle("/*", site)

	// Create HTTP server
	var srv = http.Server{
		Addr:              *fAddr,
		Handler:           gziphandler.GzipHandler(r),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Listening on %s", *fAddr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
