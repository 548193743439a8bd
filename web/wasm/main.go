//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-spiro/dsp/controls"
	"github.com/cwbudde/algo-spiro/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		cfg := webdemo.DefaultConfig()
		if v, ok := numberArg(args, 0); ok {
			cfg.Samples = int(v)
		}
		if v, ok := numberArg(args, 1); ok {
			cfg.Loops = v
		}
		if v, ok := numberArg(args, 2); ok {
			cfg.Phasors = int(v)
		}
		e, err := webdemo.NewEngine(cfg)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setRatio", export(func(args []js.Value) any {
		return setControl(controls.KindRatio, args)
	}))

	api.Set("setRadius", export(func(args []js.Value) any {
		return setControl(controls.KindRadius, args)
	}))

	api.Set("curve", export(func(args []js.Value) any {
		out := js.Global().Get("Object").New()
		if engine == nil {
			out.Set("re", js.Global().Get("Float64Array").New(0))
			out.Set("im", js.Global().Get("Float64Array").New(0))
			return out
		}
		re, im := engine.Curve()
		out.Set("re", float64Array(re))
		out.Set("im", float64Array(im))
		return out
	}))

	api.Set("controls", export(func(args []js.Value) any {
		arr := js.Global().Get("Array").New()
		if engine == nil {
			return arr
		}
		for i, c := range engine.Controls() {
			item := js.Global().Get("Object").New()
			item.Set("label", c.Label)
			item.Set("kind", c.Kind.String())
			item.Set("index", c.Index)
			item.Set("min", c.Range.Min)
			item.Set("max", c.Range.Max)
			item.Set("init", c.Range.Init)
			item.Set("value", c.Value)
			arr.SetIndex(i, item)
		}
		return arr
	}))

	api.Set("extent", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		ext := engine.Extent()
		out := js.Global().Get("Object").New()
		out.Set("minReal", ext.MinReal)
		out.Set("maxReal", ext.MaxReal)
		out.Set("minImag", ext.MinImag)
		out.Set("maxImag", ext.MaxImag)
		out.Set("maxRadius", ext.MaxRadius)
		return out
	}))

	api.Set("redraws", export(func(args []js.Value) any {
		if engine == nil {
			return 0
		}
		return engine.Redraws()
	}))

	js.Global().Set("AlgoSpiroDemo", api)
	select {}
}

func setControl(kind controls.Kind, args []js.Value) any {
	if engine == nil {
		return js.Null()
	}
	idx, okIdx := numberArg(args, 0)
	val, okVal := numberArg(args, 1)
	if !okIdx || !okVal {
		return "index and value must be numbers"
	}
	v, err := engine.SetControl(kind, int(idx), val)
	if err != nil {
		return err.Error()
	}
	return v
}

// numberArg returns args[i] when it is present and a JS number.
func numberArg(args []js.Value, i int) (float64, bool) {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return 0, false
	}
	return args[i].Float(), true
}

func float64Array(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
