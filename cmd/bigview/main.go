// This file is part of bignum.
//
// bignum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bignum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bignum.  If not, see <https://www.gnu.org/licenses/>.

// Command bigview is a small SDL2/Dear ImGui calculator over the
// bigint package: type two arbitrary-precision literals, run
// add/sub/mul/compare against them, and see the decimal, hex and
// binary renderings of the result, with an optional memviz dump of
// the result's in-memory limb layout.
package main

import (
	"fmt"
	"os"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/bignum/logger"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	plt, err := newPlatform("bigview", 900, 600)
	if err != nil {
		return err
	}
	defer plt.destroy()

	imgui.CreateContext(nil)
	defer func() {
		ctx, err := imgui.CurrentContext()
		if err != nil {
			logger.Log("bigview", err.Error())
			return
		}
		ctx.Destroy()
	}()

	rnd, err := newRenderer()
	if err != nil {
		return err
	}
	defer rnd.destroy()

	state := newCalculatorState()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		plt.newFrame()
		imgui.NewFrame()
		state.draw()
		imgui.Render()

		rnd.preRender()
		fbw, fbh := plt.framebufferSize()
		ww, wh := plt.windowSize()
		rnd.render([2]float32{float32(ww), float32(wh)}, [2]float32{float32(fbw), float32(fbh)}, imgui.RenderedDrawData())
		plt.swap()
	}

	return nil
}
