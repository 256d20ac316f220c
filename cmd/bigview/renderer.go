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
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const vertexShaderSource = `#version 150
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
` + "\x00"

const fragmentShaderSource = `#version 150
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main() {
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
` + "\x00"

// renderer translates imgui draw data into OpenGL 3.2 core-profile
// draw calls. Adapted from the teacher's gui/sdlimgui glsl type: the
// shader program here carries only the uniforms a plain widget UI
// needs (Texture, ProjMtx, Position, UV, Color) -- none of the CRT
// screen uniforms (mask, scanlines, vignette, ...) bigview has no use
// for, since it draws no TV image.
type renderer struct {
	shaderHandle   uint32
	vboHandle      uint32
	elementsHandle uint32
	fontTexture    uint32

	attribTexture  int32
	attribProjMtx  int32
	attribPosition int32
	attribUV       int32
	attribColor    int32
}

func newRenderer() (*renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("bigview: gl: %w", err)
	}

	r := &renderer{}
	r.compile()
	r.uploadFontAtlas()
	return r, nil
}

func (r *renderer) compile() {
	r.shaderHandle = gl.CreateProgram()
	vert := gl.CreateShader(gl.VERTEX_SHADER)
	frag := gl.CreateShader(gl.FRAGMENT_SHADER)

	compile := func(handle uint32, source string) {
		csource, free := gl.Strs(source)
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
		gl.CompileShader(handle)
		if log := shaderCompileError(handle); log != "" {
			fmt.Println(log)
		}
	}
	compile(vert, vertexShaderSource)
	compile(frag, fragmentShaderSource)

	gl.AttachShader(r.shaderHandle, vert)
	gl.AttachShader(r.shaderHandle, frag)
	gl.LinkProgram(r.shaderHandle)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	r.attribTexture = gl.GetUniformLocation(r.shaderHandle, gl.Str("Texture\x00"))
	r.attribProjMtx = gl.GetUniformLocation(r.shaderHandle, gl.Str("ProjMtx\x00"))
	r.attribPosition = gl.GetAttribLocation(r.shaderHandle, gl.Str("Position\x00"))
	r.attribUV = gl.GetAttribLocation(r.shaderHandle, gl.Str("UV\x00"))
	r.attribColor = gl.GetAttribLocation(r.shaderHandle, gl.Str("Color\x00"))

	gl.GenBuffers(1, &r.vboHandle)
	gl.GenBuffers(1, &r.elementsHandle)
}

func (r *renderer) uploadFontAtlas() {
	image := imgui.CurrentIO().Fonts().TextureDataAlpha8()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	imgui.CurrentIO().Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
}

func (r *renderer) destroy() {
	if r.vboHandle != 0 {
		gl.DeleteBuffers(1, &r.vboHandle)
	}
	if r.elementsHandle != 0 {
		gl.DeleteBuffers(1, &r.elementsHandle)
	}
	if r.shaderHandle != 0 {
		gl.DeleteProgram(r.shaderHandle)
	}
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
	}
}

func (r *renderer) preRender() {
	gl.ClearColor(0.1, 0.1, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// render draws one frame's worth of imgui draw data.
func (r *renderer) render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbWidth / displayWidth, Y: fbHeight / displayHeight})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	ortho := [4][4]float32{
		{2.0 / displayWidth, 0, 0, 0},
		{0, 2.0 / -displayHeight, 0, 0},
		{0, 0, -1, 0},
		{-1, 1, 0, 1},
	}
	gl.UseProgram(r.shaderHandle)
	gl.Uniform1i(r.attribTexture, 0)
	gl.UniformMatrix4fv(r.attribProjMtx, 1, false, &ortho[0][0])
	gl.BindSampler(0, 0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
	gl.EnableVertexAttribArray(uint32(r.attribPosition))
	gl.EnableVertexAttribArray(uint32(r.attribUV))
	gl.EnableVertexAttribArray(uint32(r.attribColor))

	vertexSize, offPos, offUV, offCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointer(uint32(r.attribPosition), 2, gl.FLOAT, false, int32(vertexSize), unsafe.Pointer(uintptr(offPos)))
	gl.VertexAttribPointer(uint32(r.attribUV), 2, gl.FLOAT, false, int32(vertexSize), unsafe.Pointer(uintptr(offUV)))
	gl.VertexAttribPointer(uint32(r.attribColor), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), unsafe.Pointer(uintptr(offCol)))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	gl.ActiveTexture(gl.TEXTURE0)
	for _, list := range drawData.CommandLists() {
		var indexOffset uintptr

		vbuf, vbufSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
		gl.BufferData(gl.ARRAY_BUFFER, vbufSize, vbuf, gl.STREAM_DRAW)

		ibuf, ibufSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elementsHandle)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ibufSize, ibuf, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			clip := cmd.ClipRect()
			gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
			gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, unsafe.Pointer(indexOffset))
			indexOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
	gl.DeleteVertexArrays(1, &vao)
}

func shaderCompileError(shader uint32) string {
	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok != 0 {
		return ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
	return log
}
