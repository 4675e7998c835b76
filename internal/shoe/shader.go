package shoe

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"kicks-lab/internal/environment"
)

// Light describes the scene lighting applied to every region.
type Light struct {
	Ambient   float32    // ambient intensity
	Position  [3]float32 // light position; the shader uses the direction to the origin
	Intensity float32
	// Sky and Ground tint the ambient term for up- and down-facing surfaces.
	Sky, Ground [3]float32
}

// DefaultLight is a soft ambient term under the city environment plus one light above
// and to the right.
var DefaultLight = Light{
	Ambient:   0.7,
	Position:  [3]float32{10, 15, 10},
	Intensity: 0.5,
	Sky:       environment.Vec(environment.City.Sky),
	Ground:    environment.Vec(environment.City.Ground),
}

// WithEnvironment returns l with its ambient tints taken from env.
func (l Light) WithEnvironment(env environment.Environment) Light {
	l.Sky = environment.Vec(env.Sky)
	l.Ground = environment.Vec(env.Ground)
	return l
}

const (
	specularPower    = 32
	specularStrength = 0.15
)

// litShader is the directional light + ambient shader shared by all region materials.
type litShader struct {
	shader rl.Shader

	viewPosLoc          int32
	lightDirLoc         int32
	ambientLoc          int32
	skyColorLoc         int32
	groundColorLoc      int32
	lightColorLoc       int32
	lightIntensityLoc   int32
	specularPowerLoc    int32
	specularStrengthLoc int32
}

// loadLitShader compiles the shader. ok is false when compilation failed; materials then
// keep raylib's default shader.
func loadLitShader() (litShader, bool) {
	s := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(s) {
		return litShader{}, false
	}
	return litShader{
		shader:              s,
		viewPosLoc:          rl.GetShaderLocation(s, "viewPos"),
		lightDirLoc:         rl.GetShaderLocation(s, "lightDir"),
		ambientLoc:          rl.GetShaderLocation(s, "ambient"),
		skyColorLoc:         rl.GetShaderLocation(s, "skyColor"),
		groundColorLoc:      rl.GetShaderLocation(s, "groundColor"),
		lightColorLoc:       rl.GetShaderLocation(s, "lightColor"),
		lightIntensityLoc:   rl.GetShaderLocation(s, "lightIntensity"),
		specularPowerLoc:    rl.GetShaderLocation(s, "specularPower"),
		specularStrengthLoc: rl.GetShaderLocation(s, "specularStrength"),
	}, true
}

// setUniforms uploads per-frame lighting. Call before drawing the regions.
func (l litShader) setUniforms(viewPos rl.Vector3, light Light) {
	dir := rl.Vector3Normalize(rl.NewVector3(light.Position[0], light.Position[1], light.Position[2]))
	set := func(loc int32, v []float32, typ rl.ShaderUniformDataType) {
		if loc >= 0 {
			rl.SetShaderValue(l.shader, loc, v, typ)
		}
	}
	set(l.viewPosLoc, []float32{viewPos.X, viewPos.Y, viewPos.Z}, rl.ShaderUniformVec3)
	set(l.lightDirLoc, []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)
	set(l.ambientLoc, []float32{light.Ambient, light.Ambient, light.Ambient, 1}, rl.ShaderUniformVec4)
	set(l.skyColorLoc, light.Sky[:], rl.ShaderUniformVec3)
	set(l.groundColorLoc, light.Ground[:], rl.ShaderUniformVec3)
	set(l.lightColorLoc, []float32{1, 1, 1}, rl.ShaderUniformVec3)
	set(l.lightIntensityLoc, []float32{light.Intensity}, rl.ShaderUniformFloat)
	set(l.specularPowerLoc, []float32{specularPower}, rl.ShaderUniformFloat)
	set(l.specularStrengthLoc, []float32{specularStrength}, rl.ShaderUniformFloat)
}

func (l litShader) unload() {
	if l.shader.ID != 0 {
		rl.UnloadShader(l.shader)
	}
}

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
	// Regions are two-sided (the inner lining is seen from inside), so back faces use the
	// flipped normal.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 skyColor;
uniform vec3 groundColor;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 hemi = mix(groundColor, skyColor, N.y * 0.5 + 0.5);
  vec3 amb = ambient.rgb * hemi * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
