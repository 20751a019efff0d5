package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// meshSet holds the shared cube mesh and lit material. Created lazily on first
// draw so GPU resources are allocated after the window/OpenGL context exists.
type meshSet struct {
	cube   rl.Mesh
	mtl    rl.Material
	loaded bool

	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

func newMeshSet() *meshSet {
	return &meshSet{
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// ensure creates the cube mesh and lit material if not yet loaded.
func (m *meshSet) ensure() {
	if m.loaded {
		return
	}
	m.cube = rl.GenMeshCube(1, 1, 1)
	m.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		m.mtl.Shader = shader
	}
	m.loaded = true
}

// setView sets camera position and direction-to-light for this frame. Called once
// per frame before drawing so boxes get correct shading.
func (m *meshSet) setView(viewPos, lightDir [3]float32) {
	m.viewPos = viewPos
	m.lightDir = lightDir
}

// lighting defaults: dim ambient so shadowed faces aren't pure black, soft
// warm-white directional light.
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

const defaultLightIntensity = float32(0.75)

// setUniforms pushes viewPos, lightDir, ambient, and light color/intensity to the shader.
func (m *meshSet) setUniforms() {
	shader := m.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := m.viewPos
	lightDir := m.lightDir
	amb := defaultAmbient
	lightColor := defaultLightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
}

// drawBox draws a lit, oriented box: unit cube scaled to size, rotated, then
// translated to center. Must be called between BeginMode3D and EndMode3D.
func (m *meshSet) drawBox(center, size rl.Vector3, rotation rl.Quaternion, color rl.Color) {
	m.ensure()
	m.setUniforms()
	if albedo := m.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	scaleM := rl.MatrixScale(size.X, size.Y, size.Z)
	rotM := rl.QuaternionToMatrix(rotation)
	transM := rl.MatrixTranslate(center.X, center.Y, center.Z)
	transform := rl.MatrixMultiply(rl.MatrixMultiply(scaleM, rotM), transM)
	rl.DrawMesh(m.cube, m.mtl, transform)
}

// Lit shader: simple directional light + ambient. Same vertex attributes as
// raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  finalColor = vec4(amb + diffuse, colDiffuse.a);
}
`
)
