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

package main

import (
	"fmt"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/bignum/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// platform owns the SDL window and GL context bigview renders into.
// Adapted from the teacher's gui/sdlimgui bootstrap: the joystick and
// multi-mode window plumbing that file carries is gone, since bigview
// has exactly one window and no emulation input to read, but the
// SDL/GL setup sequence itself -- hints, GL attributes, window
// creation, context creation -- follows it step for step.
type platform struct {
	window *sdl.Window
	glCtx  sdl.GLContext
}

func newPlatform(title string, w, h int32) (*platform, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("bigview: sdl: %w", err)
	}

	sdl.SetHint(sdl.HINT_VIDEO_X11_NET_WM_BYPASS_COMPOSITOR, "0")

	for attr, v := range map[sdl.GLattr]int{
		sdl.GL_CONTEXT_MAJOR_VERSION: 3,
		sdl.GL_CONTEXT_MINOR_VERSION: 2,
		sdl.GL_CONTEXT_PROFILE_MASK:  sdl.GL_CONTEXT_PROFILE_CORE,
	} {
		if err := sdl.GLSetAttribute(attr, v); err != nil {
			return nil, fmt.Errorf("bigview: sdl: %w", err)
		}
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("bigview: sdl: %w", err)
	}

	glCtx, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("bigview: sdl: %w", err)
	}
	if err := window.GLMakeCurrent(glCtx); err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("bigview: sdl: %w", err)
	}

	if err := sdl.GLSetSwapInterval(1); err != nil {
		logger.Log("bigview", err.Error())
	}

	return &platform{window: window, glCtx: glCtx}, nil
}

func (plt *platform) destroy() {
	sdl.GLDeleteContext(plt.glCtx)
	if err := plt.window.Destroy(); err != nil {
		logger.Log("bigview", err.Error())
	}
	sdl.Quit()
}

func (plt *platform) windowSize() (int32, int32) {
	return plt.window.GetSize()
}

func (plt *platform) framebufferSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// newFrame forwards the mouse state to imgui for the next frame, the
// same responsibility the teacher's platform.newFrame carries, minus
// the trickle-click handling bigview's single-window UI doesn't need.
func (plt *platform) newFrame() {
	w, h := plt.windowSize()
	imgui.CurrentIO().SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	x, y, state := sdl.GetMouseState()
	imgui.CurrentIO().SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		imgui.CurrentIO().SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

func (plt *platform) swap() {
	plt.window.GLSwap()
}
