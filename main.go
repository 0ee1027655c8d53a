package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"net/http"
	_ "net/http/pprof"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
)

var (
	pprofPort = flag.String("pprof", "", "http pprof port")
)

const programCacheSize = 8

type Demo struct {
	win *glfw.Window
	cfg Config

	render   *SceneRender
	programs *programCache
	sceneIdx int

	start float64
	fps   FPS

	closed bool
}

func initGL(cfg Config, state WindowState, restore bool) *glfw.Window {
	err := glfw.Init()
	if err != nil {
		log.Fatal(err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, gl.TRUE)

	w, h := cfg.Width, cfg.Height
	if restore {
		w, h = int(state.Width), int(state.Height)
	}
	win, err := glfw.CreateWindow(w, h, cfg.Title, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	if restore {
		win.SetPos(int(state.X), int(state.Y))
	}
	win.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return win
}

// NewDemo opens the window and builds the first program. restore selects
// whether state overrides the configured window size.
func NewDemo(cfg Config, state WindowState, restore bool) (*Demo, error) {
	idx, err := FindScene(cfg.Scene)
	if err != nil {
		return nil, err
	}
	src, err := LoadShader(cfg.Shader)
	if err != nil {
		return nil, err
	}
	demo := &Demo{
		cfg:      cfg,
		sceneIdx: idx,
	}
	demo.programs, err = newProgramCache(programCacheSize, NewProgram)
	if err != nil {
		return nil, err
	}

	mainthread.Call(func() {
		win := initGL(cfg, state, restore)
		win.SetKeyCallback(demo.onKeyCallback)
		win.SetFramebufferSizeCallback(demo.onFrameBufferSizeCallback)
		demo.win = win

		shader, _, berr := demo.programs.Get(src)
		if berr != nil {
			err = berr
			return
		}
		demo.render = NewSceneRender(shader, scenes[idx])
		demo.start = glfw.GetTime()
	})
	if err != nil {
		mainthread.Call(glfw.Terminate)
		return nil, err
	}
	return demo, nil
}

func (d *Demo) onFrameBufferSizeCallback(win *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Demo) onKeyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		win.SetShouldClose(true)
	case glfw.KeyTab:
		d.sceneIdx = (d.sceneIdx + 1) % len(scenes)
		d.render.SetScene(scenes[d.sceneIdx])
		log.Printf("scene %s", scenes[d.sceneIdx].Name)
	case glfw.KeyR:
		d.reloadShader()
	}
}

// reloadShader re-reads the shader file. On failure the current program
// stays in use. Called on mainthread.
func (d *Demo) reloadShader() {
	src, err := LoadShader(d.cfg.Shader)
	if err != nil {
		log.Printf("reload shader: %v", err)
		return
	}
	shader, cached, err := d.programs.Get(src)
	if err != nil {
		log.Printf("reload shader: %v", err)
		return
	}
	d.render.SetShader(shader)
	log.Printf("reload shader %s (cached:%v)", d.shaderName(), cached)
}

func (d *Demo) shaderName() string {
	if d.cfg.Shader == "" {
		return "builtin"
	}
	return d.cfg.Shader
}

func (d *Demo) ShouldClose() bool {
	return d.closed
}

func (d *Demo) renderStat() {
	d.fps.Update()
	title := fmt.Sprintf("%s [%s] %d", d.cfg.Title, d.render.Scene().Name, d.fps.Fps())
	d.win.SetTitle(title)
}

func (d *Demo) Update() {
	mainthread.Call(func() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		width, height := d.win.GetFramebufferSize()
		t := glfw.GetTime() - d.start
		d.render.Draw(projection(width, height), animatedColor(t))

		d.renderStat()

		d.win.SwapBuffers()
		glfw.PollEvents()
		d.closed = d.win.ShouldClose()
	})
}

func (d *Demo) WindowState() WindowState {
	var state WindowState
	mainthread.Call(func() {
		x, y := d.win.GetPos()
		w, h := d.win.GetSize()
		state = WindowState{X: int32(x), Y: int32(y), Width: int32(w), Height: int32(h)}
	})
	return state
}

func (d *Demo) Close() {
	mainthread.Call(func() {
		d.render.Release()
		d.win.Destroy()
		glfw.Terminate()
	})
}

type FPS struct {
	lastUpdate time.Time
	cnt        int
	fps        int
}

func (f *FPS) Update() {
	f.cnt++
	now := time.Now()
	p := now.Sub(f.lastUpdate)
	if p >= time.Second {
		f.fps = int(float64(f.cnt) / p.Seconds())
		f.cnt = 0
		f.lastUpdate = now
	}
}

func (f *FPS) Fps() int {
	return f.fps
}

func run() {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	set, err := applyFlags(&cfg, flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	var (
		store   *Store
		state   WindowState
		restore bool
	)
	if *dbpath != "" {
		store, err = NewStore(*dbpath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		state, restore = store.GetWindowState()
		if set["w"] || set["h"] {
			restore = false
		}
	}

	demo, err := NewDemo(cfg, state, restore)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *FileWatcher
	if cfg.Shader != "" {
		watcher, err = WatchFile(cfg.Shader, func() {
			mainthread.CallNonBlock(demo.reloadShader)
		})
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		}
	}

	tick := time.Tick(time.Second / 60)
	for !demo.ShouldClose() {
		<-tick
		demo.Update()
	}
	// no reloads may be queued once the context is gone
	if watcher != nil {
		watcher.Close()
	}

	if store != nil {
		if err := store.UpdateWindowState(demo.WindowState()); err != nil {
			log.Printf("save window state: %v", err)
		}
	}
	demo.Close()
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	flag.Parse()
	go func() {
		if *pprofPort != "" {
			log.Fatal(http.ListenAndServe(*pprofPort, nil))
		}
	}()
	mainthread.Run(run)
}
